package db

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-advisor/internal/core/domain"
)

// SeedRecords returns n demo campaign rows drawn from r. The rows spread
// over every action the rules can produce.
func SeedRecords(r *rand.Rand, n int) []domain.CampaignRecord {
	out := make([]domain.CampaignRecord, 0, n)
	for i := 0; i < n; i++ {
		impressions := int64(1000 + r.Intn(99000))
		// CTR between 0.2% and 6%
		clicks := impressions * int64(2+r.Intn(59)) / 1000
		spend := float64(50 + r.Intn(2000))
		// some campaigns never convert
		conversions := int64(r.Intn(40))
		// ROAS between 0.5 and 6
		revenue := spend * (0.5 + r.Float64()*5.5)
		out = append(out, domain.CampaignRecord{
			CampaignID:  uuid.NewString(),
			Impressions: impressions,
			Clicks:      clicks,
			Spend:       spend,
			Conversions: conversions,
			Revenue:     revenue,
		})
	}
	return out
}

// Seed inserts demo campaign performance rows. Existing campaign IDs are
// left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	records := SeedRecords(r, 25)

	batch := &pgx.Batch{}
	for i, rec := range records {
		batch.Queue(`INSERT INTO campaign_performance
(campaign_id, impressions, clicks, spend, conversions, revenue, recorded_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			rec.CampaignID, rec.Impressions, rec.Clicks, rec.Spend, rec.Conversions, rec.Revenue,
			time.Now().UTC().Add(time.Duration(i)*time.Second))
	}
	return db.SendBatch(ctx, batch).Close()
}
