package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/worktrace/worktrace-backend-go/internal/domain/holiday"
)

// DefaultBaseURL points at the public Nager.Date v3 API.
const DefaultBaseURL = "https://date.nager.at/api/v3"

// Client fetches public holidays from a PublicHolidays/{year}/{countryCode}
// style endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchYear retrieves the holidays for one year and country. Any non-200
// status, transport failure or undecodable body is returned as an error;
// deciding whether to fall back is the caller's concern.
func (c *Client) FetchYear(ctx context.Context, year int, countryCode string) ([]holiday.Holiday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, strings.ToUpper(countryCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday feed returned status %d", resp.StatusCode)
	}

	var holidays []holiday.Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holiday feed: %w", err)
	}

	return holidays, nil
}
