package port

import (
	"context"
	"errors"

	"campaign-advisor/internal/core/domain"
)

var (
	// ErrMissingField is returned when a required column is absent from the
	// input batch. It aborts the whole batch.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidValue is returned when a cell cannot be read as a number.
	ErrInvalidValue = errors.New("invalid value")
	// ErrMalformedInput is returned when the input cannot be read as a
	// table at all, e.g. broken CSV quoting or a corrupt workbook.
	ErrMalformedInput = errors.New("malformed input")
	// ErrNoStoredSource is returned when analysis of stored campaigns is
	// requested but no database is configured.
	ErrNoStoredSource = errors.New("no stored campaign source configured")
)

// RequiredFields lists the input columns every batch must carry.
var RequiredFields = []string{"Campaign_ID", "Impressions", "Clicks", "Spend", "Conversions", "Revenue"}

// CampaignSource is an outbound port delivering a batch of campaign rows.
// Implementations substitute zero for missing values and return
// ErrMissingField when a required column is absent.
type CampaignSource interface {
	// Name identifies the source in reports and logs.
	Name() string
	// Load returns the rows of the batch in input order.
	Load(ctx context.Context) ([]domain.CampaignRecord, error)
}
