package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// maxInsightBody caps the JSON body of an insight request.
const maxInsightBody = 64 << 10

type insightRequest struct {
	Text string `json:"text"`
}

type insightResponse struct {
	Insights string `json:"insights"`
}

// handleInsight forwards free campaign text to the insight service. The
// response is always HTTP 200 with either the insight or an "Error: ..."
// message; only an unreadable or empty request yields HTTP 400.
func (h *Handler) handleInsight(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxInsightBody)

	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	writeJSON(w, http.StatusOK, insightResponse{Insights: h.svc.Insight(r.Context(), text)})
}
