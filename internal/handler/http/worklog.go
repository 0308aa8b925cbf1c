package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/handler/http/response"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/validator"
)

const maxImageUploadBytes = 10 << 20

type WorkLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	ListImages(w http.ResponseWriter, r *http.Request)
	AddImage(w http.ResponseWriter, r *http.Request)
	RemoveImage(w http.ResponseWriter, r *http.Request)
}

type WorkLogHandlerImpl struct {
	workLogService worklog.Service
}

func NewWorkLogHandler(workLogService worklog.Service) WorkLogHandler {
	return &WorkLogHandlerImpl{workLogService: workLogService}
}

// List implements WorkLogHandler. With start and end query params it
// returns the inclusive range ascending; without them, everything newest
// first.
func (h *WorkLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")

	var (
		updates []worklog.WorkUpdate
		err     error
	)
	if startParam != "" || endParam != "" {
		start, end, perr := parseDateRange(startParam, endParam)
		if perr != nil {
			response.HandleError(w, perr)
			return
		}
		updates, err = h.workLogService.FetchRange(r.Context(), start, end)
	} else {
		updates, err = h.workLogService.List(r.Context())
	}
	if err != nil {
		slog.Error("List work updates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	out := make([]worklog.WorkUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, worklog.NewWorkUpdateResponse(u))
	}
	response.Success(w, out)
}

// Upsert implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(chi.URLParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var upsertReq worklog.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.workLogService.UpsertForDate(r.Context(), date, upsertReq)
	if err != nil {
		slog.Error("Upsert service error", "error", err, "date", date.Format("2006-01-02"))
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work update saved", worklog.NewWorkUpdateResponse(saved))
}

// ListImages implements WorkLogHandler. The path key is either the owning
// record's id or its calendar date.
func (h *WorkLogHandlerImpl) ListImages(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	workUpdateID := key
	if !validator.IsValidUUID(key) {
		date, err := parseDateParam(key)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		updates, err := h.workLogService.FetchRange(r.Context(), date, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if len(updates) == 0 {
			response.Success(w, []worklog.ImageResponse{})
			return
		}
		workUpdateID = updates[0].ID
	}

	images, err := h.workLogService.ListImages(r.Context(), workUpdateID)
	if err != nil {
		slog.Error("ListImages service error", "error", err)
		response.HandleError(w, err)
		return
	}

	out := make([]worklog.ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, worklog.NewImageResponse(img))
	}
	response.Success(w, out)
}

// AddImage implements WorkLogHandler. Accepts one multipart file under
// the "image" field.
func (h *WorkLogHandlerImpl) AddImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		slog.Error("AddImage multipart parse error", "error", err)
		response.BadRequest(w, "Invalid multipart payload", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Missing image file", nil)
		return
	}
	defer file.Close()

	image, err := h.workLogService.AddImage(r.Context(), worklog.AddImageRequest{
		WorkUpdateID: chi.URLParam(r, "key"),
		File:         file,
		FileHeader:   header,
	})
	if err != nil {
		slog.Error("AddImage service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Image uploaded", worklog.NewImageResponse(image))
}

// RemoveImage implements WorkLogHandler.
func (h *WorkLogHandlerImpl) RemoveImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(imageID) {
		response.BadRequest(w, "Invalid image id", nil)
		return
	}

	if err := h.workLogService.RemoveImage(r.Context(), imageID); err != nil {
		slog.Error("RemoveImage service error", "error", err, "image_id", imageID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Image deleted", nil)
}

func parseDateParam(raw string) (time.Time, error) {
	date, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be formatted yyyy-MM-dd",
		}}
	}
	return date, nil
}

func parseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors
	start, startOK := validator.IsValidDate(startRaw)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "start must be formatted yyyy-MM-dd"})
	}
	end, endOK := validator.IsValidDate(endRaw)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end must be formatted yyyy-MM-dd"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{{
			Field:   "end",
			Message: "end must not precede start",
		}}
	}
	return start, end, nil
}
