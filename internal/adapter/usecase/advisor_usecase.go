package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
	"campaign-advisor/internal/core/rules"
)

// AdvisorUseCase runs the load, derive and classify pipeline and assembles
// the result into a report. It implements port.AdvisorUseCase.
type AdvisorUseCase struct {
	classifier *rules.Classifier
	stored     port.CampaignSource
	insights   port.InsightClient
	logger     *slog.Logger

	// now is replaced in tests.
	now func() time.Time
}

// NewAdvisorUseCase creates a use case classifying with th. stored may be
// nil when no database source is configured; insights must not be nil,
// pass a client that reports port.ErrInsightUnavailable to disable lookups.
func NewAdvisorUseCase(th domain.Thresholds, stored port.CampaignSource, insights port.InsightClient, logger *slog.Logger) *AdvisorUseCase {
	return &AdvisorUseCase{
		classifier: rules.NewClassifier(th),
		stored:     stored,
		insights:   insights,
		logger:     logger,
		now:        time.Now,
	}
}

// Analyze loads the batch from src and evaluates every row. A source error
// aborts the batch; degenerate metrics in single rows never do.
func (u *AdvisorUseCase) Analyze(ctx context.Context, src port.CampaignSource) (*domain.Report, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	report := &domain.Report{
		ID:          uuid.New(),
		GeneratedAt: u.now().UTC(),
		Source:      src.Name(),
		Thresholds:  u.classifier.Thresholds(),
		Evaluations: u.classifier.EvaluateAll(records),
	}

	summary := report.Summary()
	u.logger.Info("campaigns analyzed",
		slog.String("report_id", report.ID.String()),
		slog.String("source", report.Source),
		slog.Int("rows", len(report.Evaluations)),
		slog.Int("pause", summary[domain.ActionPause]),
		slog.Int("increase", summary[domain.ActionIncreaseBudget]),
		slog.Int("decrease", summary[domain.ActionDecreaseBudget]),
	)
	return report, nil
}

// AnalyzeStored runs Analyze against the database source.
func (u *AdvisorUseCase) AnalyzeStored(ctx context.Context) (*domain.Report, error) {
	if u.stored == nil {
		return nil, port.ErrNoStoredSource
	}
	return u.Analyze(ctx, u.stored)
}

// Insight returns the service's insight for text, or "Error: <reason>" when
// the lookup fails.
func (u *AdvisorUseCase) Insight(ctx context.Context, text string) string {
	insight, err := u.insights.GenerateInsight(ctx, text)
	if err != nil {
		u.logger.Warn("insight lookup failed", slog.Any("error", err))
		return "Error: " + err.Error()
	}
	return insight
}

// Thresholds returns the thresholds used by the classifier.
func (u *AdvisorUseCase) Thresholds() domain.Thresholds {
	return u.classifier.Thresholds()
}
