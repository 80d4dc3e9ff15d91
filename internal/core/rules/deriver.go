// Package rules holds the campaign decision logic: metric derivation and the
// ordered action cascade. Everything here is pure and has no I/O.
package rules

import "campaign-advisor/internal/core/domain"

// Derive computes CTR, CPA and ROAS for a record. Zero denominators never
// panic; they produce an Unbounded or Indeterminate metric instead.
func Derive(rec domain.CampaignRecord) domain.DerivedMetrics {
	ctr := domain.Ratio(float64(rec.Clicks), float64(rec.Impressions))
	if ctr.IsDefined() {
		ctr.Value *= 100
	}
	return domain.DerivedMetrics{
		CTR:  ctr,
		CPA:  domain.Ratio(rec.Spend, float64(rec.Conversions)),
		ROAS: domain.Ratio(rec.Revenue, rec.Spend),
	}
}

// DeriveAll maps Derive over records, keeping their order.
func DeriveAll(records []domain.CampaignRecord) []domain.DerivedMetrics {
	out := make([]domain.DerivedMetrics, len(records))
	for i, rec := range records {
		out[i] = Derive(rec)
	}
	return out
}
