package port

import (
	"context"

	"campaign-advisor/internal/core/domain"
)

// AdvisorUseCase defines the business operations exposed by the campaign
// advisor. It is the primary port used by the HTTP adapter. Mock
// implementations can be generated from this interface for testing.
type AdvisorUseCase interface {
	// Analyze loads the batch from src, derives metrics and classifies every
	// row. Errors from the source abort the batch and are returned as is.
	Analyze(ctx context.Context, src CampaignSource) (*domain.Report, error)

	// AnalyzeStored runs Analyze against the configured database source. It
	// returns ErrNoStoredSource when none is configured.
	AnalyzeStored(ctx context.Context) (*domain.Report, error)

	// Insight asks the insight service about text. Failures are reported in
	// the returned message, prefixed with "Error: ", and never as an error.
	Insight(ctx context.Context, text string) string

	// Thresholds returns the rule thresholds in use.
	Thresholds() domain.Thresholds
}
