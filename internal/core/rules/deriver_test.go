package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-advisor/internal/core/domain"
)

func TestDerive(t *testing.T) {
	m := Derive(domain.CampaignRecord{
		CampaignID:  "c1",
		Impressions: 1000,
		Clicks:      50,
		Spend:       100,
		Conversions: 10,
		Revenue:     600,
	})

	assert.True(t, m.CTR.IsDefined())
	assert.InDelta(t, 5.0, m.CTR.Value, 1e-9)
	assert.InDelta(t, 10.0, m.CPA.Value, 1e-9)
	assert.InDelta(t, 6.0, m.ROAS.Value, 1e-9)
}

func TestDeriveZeroDenominators(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.CampaignRecord
		ctr  domain.MetricState
		cpa  domain.MetricState
		roas domain.MetricState
	}{
		{
			name: "no conversions",
			rec:  domain.CampaignRecord{Impressions: 1000, Clicks: 50, Spend: 100, Revenue: 300},
			ctr:  domain.Defined,
			cpa:  domain.Unbounded,
			roas: domain.Defined,
		},
		{
			name: "no impressions with clicks",
			rec:  domain.CampaignRecord{Clicks: 3, Spend: 10, Conversions: 1, Revenue: 20},
			ctr:  domain.Unbounded,
			cpa:  domain.Defined,
			roas: domain.Defined,
		},
		{
			name: "empty row",
			rec:  domain.CampaignRecord{CampaignID: "empty"},
			ctr:  domain.Indeterminate,
			cpa:  domain.Indeterminate,
			roas: domain.Indeterminate,
		},
		{
			name: "revenue without spend",
			rec:  domain.CampaignRecord{Impressions: 100, Clicks: 10, Conversions: 1, Revenue: 40},
			ctr:  domain.Defined,
			cpa:  domain.Indeterminate,
			roas: domain.Unbounded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Derive(tt.rec)
			assert.Equal(t, tt.ctr, m.CTR.State, "ctr")
			assert.Equal(t, tt.cpa, m.CPA.State, "cpa")
			assert.Equal(t, tt.roas, m.ROAS.State, "roas")
		})
	}
}

func TestDeriveAllKeepsOrder(t *testing.T) {
	records := []domain.CampaignRecord{
		{CampaignID: "a", Impressions: 100, Clicks: 1, Spend: 1, Revenue: 1},
		{CampaignID: "b", Impressions: 100, Clicks: 2, Spend: 1, Revenue: 2},
		{CampaignID: "c", Impressions: 100, Clicks: 3, Spend: 1, Revenue: 3},
	}

	metrics := DeriveAll(records)

	assert.Len(t, metrics, len(records))
	for i, m := range metrics {
		assert.InDelta(t, float64(i+1), m.ROAS.Value, 1e-9)
	}
}
