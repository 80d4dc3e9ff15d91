package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-advisor/internal/adapter/usecase"
	"campaign-advisor/internal/config/configs"
	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
	"campaign-advisor/internal/core/port/mocks"
)

const scenarioCSV = "Campaign_ID,Impressions,Clicks,Spend,Conversions,Revenue\n" +
	"c1,1000,5,200,2,100\n" +
	"c2,1000,50,100,10,600\n" +
	"c3,1000,50,100,10,80\n" +
	"c4,1000,50,100,10,250\n" +
	"c5,1000,50,100,0,250\n"

func testHTTPConfig() configs.HTTP {
	return configs.HTTP{Port: 8080, AllowedOrigins: []string{"*"}, MaxUploadBytes: 1 << 20}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRealHandler wires the handler to the real use case so the whole
// upload, parse and classify path is exercised.
func newRealHandler(t *testing.T, insights port.InsightClient) http.Handler {
	t.Helper()
	if insights == nil {
		insights = mocks.NewMockInsightClient(t)
	}
	svc := usecase.NewAdvisorUseCase(domain.DefaultThresholds(), nil, insights, discardLogger())
	return NewHandler(svc, testHTTPConfig(), discardLogger()).Router()
}

type reportBody struct {
	ID          string                `json:"id"`
	Source      string                `json:"source"`
	Actions     []domain.ActionRecord `json:"actions"`
	Summary     map[string]int        `json:"summary"`
	Evaluations []struct {
		Metrics map[string]any `json:"metrics"`
	} `json:"evaluations"`
}

func TestAnalyzeCSVBody(t *testing.T) {
	h := newRealHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(scenarioCSV))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body reportBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "request body", body.Source)
	assert.Equal(t, []domain.ActionRecord{
		{CampaignID: "c1", Action: domain.ActionPause, Reason: domain.ReasonLowCTR},
		{CampaignID: "c2", Action: domain.ActionIncreaseBudget, Reason: domain.ReasonHighROAS},
		{CampaignID: "c3", Action: domain.ActionDecreaseBudget, Reason: domain.ReasonLowROAS},
		{CampaignID: "c4", Action: domain.ActionNone, Reason: domain.ReasonAcceptable},
		{CampaignID: "c5", Action: domain.ActionPause, Reason: domain.ReasonHighCPA},
	}, body.Actions)
	assert.Equal(t, 2, body.Summary["Pause"])
	require.Len(t, body.Evaluations, 5)
	assert.Equal(t, "inf", body.Evaluations[4].Metrics["cpa"])
}

func TestAnalyzeMultipartUpload(t *testing.T) {
	h := newRealHandler(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "campaigns.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(scenarioCSV))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body reportBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "campaigns.csv", body.Source)
	assert.Len(t, body.Actions, 5)
}

func TestAnalyzeMultipartWithoutFile(t *testing.T) {
	h := newRealHandler(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("sheet", "Sheet1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeInputErrors(t *testing.T) {
	h := newRealHandler(t, nil)

	tests := []struct {
		name   string
		ct     string
		body   string
		status int
		msg    string
	}{
		{"missing column", "text/csv", "Campaign_ID,Impressions\nc1,5\n", http.StatusBadRequest, "Revenue"},
		{"invalid cell", "text/csv", "Campaign_ID,Impressions,Clicks,Spend,Conversions,Revenue\nc1,x,1,1,1,1\n", http.StatusBadRequest, "invalid value"},
		{"unsupported type", "application/json", "{}", http.StatusUnsupportedMediaType, "unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.ct)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.msg)
		})
	}
}

func TestAnalyzeUploadTooLarge(t *testing.T) {
	svc := usecase.NewAdvisorUseCase(domain.DefaultThresholds(), nil, mocks.NewMockInsightClient(t), discardLogger())
	cfg := testHTTPConfig()
	cfg.MaxUploadBytes = 32
	h := NewHandler(svc, cfg, discardLogger()).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(scenarioCSV))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyzeChart(t *testing.T) {
	h := newRealHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/chart", strings.NewReader(scenarioCSV))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "ROAS by Campaign")
	assert.Contains(t, rec.Body.String(), ">c5<")
}

func TestStoredActions(t *testing.T) {
	svc := mocks.NewMockAdvisorUseCase(t)
	report := &domain.Report{
		Source: "postgres:campaign_performance",
		Evaluations: []domain.Evaluation{
			{Action: domain.ActionRecord{CampaignID: "db1", Action: domain.ActionNone, Reason: domain.ReasonAcceptable}},
		},
	}
	svc.EXPECT().AnalyzeStored(mock.Anything).Return(report, nil)
	h := NewHandler(svc, testHTTPConfig(), discardLogger()).Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/actions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body reportBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "db1", body.Actions[0].CampaignID)
}

func TestStoredActionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not configured", port.ErrNoStoredSource, http.StatusServiceUnavailable},
		{"database down", fmt.Errorf("load postgres: %w", context.DeadlineExceeded), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAdvisorUseCase(t)
			svc.EXPECT().AnalyzeStored(mock.Anything).Return(nil, tt.err)
			h := NewHandler(svc, testHTTPConfig(), discardLogger()).Router()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/actions", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "deadline")
		})
	}
}

func TestInsightHandler(t *testing.T) {
	svc := mocks.NewMockAdvisorUseCase(t)
	svc.EXPECT().Insight(mock.Anything, "spring launch").Return("Error: insight service not configured")
	h := NewHandler(svc, testHTTPConfig(), discardLogger()).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(`{"text":"  spring launch "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"insights":"Error: insight service not configured"}`, rec.Body.String())
}

func TestInsightHandlerBadRequest(t *testing.T) {
	h := NewHandler(mocks.NewMockAdvisorUseCase(t), testHTTPConfig(), discardLogger()).Router()

	for _, body := range []string{`not json`, `{"text":"   "}`} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestInsightHandlerBodyTooLarge(t *testing.T) {
	h := NewHandler(mocks.NewMockAdvisorUseCase(t), testHTTPConfig(), discardLogger()).Router()

	body := `{"text":"` + strings.Repeat("a", maxInsightBody) + `"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestThresholdsAndHealth(t *testing.T) {
	svc := mocks.NewMockAdvisorUseCase(t)
	svc.EXPECT().Thresholds().Return(domain.DefaultThresholds())
	h := NewHandler(svc, testHTTPConfig(), discardLogger()).Router()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/thresholds", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"target_cpa":50,"high_cpa_multiplier":3,"ctr_min":1,"roas_increase":4,"roas_decrease":1.5}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
