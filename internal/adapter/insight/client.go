// Package insight is an outbound adapter for the remote text-analysis
// service that turns campaign descriptions into insights.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"campaign-advisor/internal/config/configs"
	"campaign-advisor/internal/core/port"
)

// NoInsights is returned when the service answers without an insight.
const NoInsights = "No insights available"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// HTTPDoer is the interface for executing HTTP requests. *http.Client
// satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements port.InsightClient over a JSON HTTP API. Each call is
// a single POST with no retry.
type Client struct {
	url    string
	apiKey string
	doer   HTTPDoer
}

type request struct {
	Text   string `json:"text"`
	APIKey string `json:"api_key"`
}

type response struct {
	Insights *string `json:"insights"`
}

// NewClient creates a client for cfg. If doer is nil an http.Client with
// cfg.Timeout is used.
func NewClient(cfg configs.Insight, doer HTTPDoer) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{url: cfg.URL, apiKey: cfg.APIKey, doer: doer}
}

// GenerateInsight posts text to the service and returns the "insights"
// field of the reply. Failures wrap one of the port.ErrInsight* errors.
func (c *Client) GenerateInsight(ctx context.Context, text string) (string, error) {
	if c.url == "" {
		return "", port.ErrInsightUnavailable
	}

	body, err := json.Marshal(request{Text: text, APIKey: c.apiKey})
	if err != nil {
		return "", fmt.Errorf("encode insight request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", port.ErrInsightTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", port.ErrInsightTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain for connection reuse
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return "", fmt.Errorf("%w: %d %s", port.ErrInsightStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var out response
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", port.ErrInsightMalformed, err)
	}
	if out.Insights == nil {
		return NoInsights, nil
	}
	return *out.Insights, nil
}
