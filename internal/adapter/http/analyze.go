package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"campaign-advisor/internal/adapter/chart"
	"campaign-advisor/internal/adapter/tabular"
	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
)

const xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errUnsupportedMedia = errors.New("unsupported content type")

// handleAnalyze evaluates an uploaded campaign table and returns the report
// as JSON. The table is either a multipart form field named "file" (.csv or
// .xlsx, optional "sheet" field) or a raw CSV or XLSX request body. Missing
// columns, invalid cells and unreadable files result in HTTP 400.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyzeUpload(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newReportResponse(report))
}

// handleAnalyzeChart accepts the same input as handleAnalyze and returns
// the ROAS bar chart as SVG.
func (h *Handler) handleAnalyzeChart(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyzeUpload(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := chart.RenderROAS(w, report.Evaluations, report.Thresholds.ROASDecrease); err != nil {
		h.logger.Error("render chart error", slog.Any("error", err))
	}
}

// handleStoredActions evaluates the campaigns stored in the database.
func (h *Handler) handleStoredActions(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.AnalyzeStored(r.Context())
	if err != nil {
		h.writeAnalysisError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newReportResponse(report))
}

func (h *Handler) analyzeUpload(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	src, closer, err := h.sourceFromRequest(r)
	if err != nil {
		if errors.Is(err, errUnsupportedMedia) {
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
			return nil, false
		}
		h.writeAnalysisError(w, r, err)
		return nil, false
	}
	defer closer.Close()

	report, err := h.svc.Analyze(r.Context(), src)
	if err != nil {
		h.writeAnalysisError(w, r, err)
		return nil, false
	}
	return report, true
}

// sourceFromRequest picks the tabular source matching the request body.
func (h *Handler) sourceFromRequest(r *http.Request) (port.CampaignSource, io.Closer, error) {
	ct := r.Header.Get("Content-Type")
	mediaType := "text/csv"
	if ct != "" {
		var err error
		mediaType, _, err = mime.ParseMediaType(ct)
		if err != nil {
			return nil, nil, errUnsupportedMedia
		}
	}

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(h.maxUpload); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, nil, err
			}
			return nil, nil, fmt.Errorf("%w: %w", port.ErrMalformedInput, err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, nil, fmt.Errorf("%w: form field %q", port.ErrMissingField, "file")
		}
		if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
			return tabular.NewXLSXSource(header.Filename, file, r.FormValue("sheet")), file, nil
		}
		return tabular.NewCSVSource(header.Filename, file), file, nil
	case "text/csv", "application/csv", "text/plain":
		return tabular.NewCSVSource("request body", r.Body), r.Body, nil
	case xlsxMediaType:
		return tabular.NewXLSXSource("request body", r.Body, r.URL.Query().Get("sheet")), r.Body, nil
	default:
		return nil, nil, errUnsupportedMedia
	}
}
