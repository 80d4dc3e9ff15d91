package port

import (
	"context"
	"errors"
)

var (
	// ErrInsightUnavailable is returned when no insight service is configured.
	ErrInsightUnavailable = errors.New("insight service not configured")
	// ErrInsightTransport wraps network failures talking to the service.
	ErrInsightTransport = errors.New("insight request failed")
	// ErrInsightStatus is returned for a non-success HTTP status.
	ErrInsightStatus = errors.New("insight service returned non-success status")
	// ErrInsightMalformed is returned when the response body cannot be decoded.
	ErrInsightMalformed = errors.New("malformed insight response")
)

// InsightClient turns free campaign text into a natural-language insight.
// It performs a single blocking request with no retry.
type InsightClient interface {
	GenerateInsight(ctx context.Context, text string) (string, error)
}
