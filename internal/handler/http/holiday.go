package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/worktrace/worktrace-backend-go/internal/domain/holiday"
	"github.com/worktrace/worktrace-backend-go/internal/handler/http/response"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/validator"
)

type HolidayHandler interface {
	ListYear(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.Service
	defaultCountry string
}

func NewHolidayHandler(holidayService holiday.Service, defaultCountry string) HolidayHandler {
	return &HolidayHandlerImpl{
		holidayService: holidayService,
		defaultCountry: defaultCountry,
	}
}

// ListYear implements HolidayHandler.
func (h *HolidayHandlerImpl) ListYear(w http.ResponseWriter, r *http.Request) {
	year, perr := parseYear(r.URL.Query().Get("year"))
	if perr != nil {
		response.HandleError(w, perr)
		return
	}

	country := strings.ToUpper(r.URL.Query().Get("country"))
	if country == "" {
		country = h.defaultCountry
	}
	if !validator.IsValidCountryCode(country) {
		response.HandleError(w, validator.ValidationErrors{{
			Field:   "country",
			Message: "country must be a two-letter ISO code",
		}})
		return
	}

	holidays, err := h.holidayService.ListYear(r.Context(), year, country)
	if err != nil {
		slog.Error("ListYear holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
