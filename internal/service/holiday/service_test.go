package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/holidayapi"
)

func TestListYear_FeedSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PublicHolidays/2026/IN", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date":"2026-01-26","name":"Republic Day","localName":"Republic Day","countryCode":"IN"},
			{"date":"2026-08-15","name":"Independence Day","localName":"Independence Day","countryCode":"IN"}
		]`))
	}))
	defer server.Close()

	svc := NewHolidayService(holidayapi.NewClient(server.URL))
	got, err := svc.ListYear(context.Background(), 2026, "IN")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-01-26", got[0].Date)
	assert.Equal(t, "Republic Day", got[0].Name)
}

func TestListYear_ServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewHolidayService(holidayapi.NewClient(server.URL))
	got, err := svc.ListYear(context.Background(), 2026, "IN")
	require.NoError(t, err, "feed failures never surface")
	require.NotEmpty(t, got)

	for _, h := range got {
		assert.Equal(t, "2026", h.Date[:4])
		assert.Equal(t, "IN", h.CountryCode)
	}
}

func TestListYear_MalformedBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	svc := NewHolidayService(holidayapi.NewClient(server.URL))
	got, err := svc.ListYear(context.Background(), 2026, "IN")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestListYear_UnknownCountryFallbackIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewHolidayService(holidayapi.NewClient(server.URL))
	got, err := svc.ListYear(context.Background(), 2026, "ZZ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
