package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
)

// errorResponse is the envelope for every API error.
type errorResponse struct {
	Error string `json:"error"`
}

// reportResponse adds the ordered action list and per-action counts to a
// report.
type reportResponse struct {
	*domain.Report
	Actions []domain.ActionRecord `json:"actions"`
	Summary map[domain.Action]int `json:"summary"`
}

func newReportResponse(r *domain.Report) reportResponse {
	return reportResponse{Report: r, Actions: r.Actions(), Summary: r.Summary()}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeAnalysisError maps pipeline errors to HTTP statuses. Input problems
// are reported to the client verbatim; anything else is logged and hidden
// behind a generic 500.
func (h *Handler) writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
	case errors.Is(err, port.ErrMissingField),
		errors.Is(err, port.ErrInvalidValue),
		errors.Is(err, port.ErrMalformedInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrNoStoredSource):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("analyze error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
