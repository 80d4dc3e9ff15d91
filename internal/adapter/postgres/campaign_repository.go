package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"campaign-advisor/internal/core/domain"
)

// Querier is the subset of pgxpool.Pool used by the repository.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CampaignRepository implements port.CampaignSource over the
// campaign_performance table. It only reads; evaluation results are never
// written back.
type CampaignRepository struct {
	db Querier
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db Querier) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Name identifies the table the rows come from.
func (r *CampaignRepository) Name() string {
	return "postgres:campaign_performance"
}

// Load returns every stored campaign row ordered by recording time. NULL
// numeric columns are read as zero.
func (r *CampaignRepository) Load(ctx context.Context) ([]domain.CampaignRecord, error) {
	query := `
        SELECT
            campaign_id,
            COALESCE(impressions, 0),
            COALESCE(clicks, 0),
            COALESCE(spend, 0),
            COALESCE(conversions, 0),
            COALESCE(revenue, 0)
        FROM campaign_performance
        ORDER BY recorded_at, campaign_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var rec domain.CampaignRecord
		err := row.Scan(
			&rec.CampaignID,
			&rec.Impressions,
			&rec.Clicks,
			&rec.Spend,
			&rec.Conversions,
			&rec.Revenue,
		)
		return rec, err
	})
}
