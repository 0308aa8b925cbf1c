package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/worktrace/worktrace-backend-go/internal/domain/report"
	"github.com/worktrace/worktrace-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportWorkUpdates(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ExportWorkUpdates implements ReportHandler. Streams the rendered PDF
// as an attachment.
func (h *ReportHandlerImpl) ExportWorkUpdates(w http.ResponseWriter, r *http.Request) {
	start, end, perr := parseMonthRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if perr != nil {
		response.HandleError(w, perr)
		return
	}
	// Widen the end stamp to the last day of its month.
	end = end.AddDate(0, 1, -1)

	doc, err := h.reportService.ExportRange(r.Context(), start, end)
	if err != nil {
		slog.Error("ExportWorkUpdates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	if _, err := w.Write(doc.Data); err != nil {
		slog.Error("ExportWorkUpdates write error", "error", err)
	}
}
