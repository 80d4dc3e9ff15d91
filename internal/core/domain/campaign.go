package domain

// CampaignRecord is one row of campaign performance data. Counts are
// non-negative integers and money amounts are expressed in currency units.
// Missing values are substituted with zero by the source before the record
// reaches the rules.
type CampaignRecord struct {
	CampaignID  string  `json:"campaign_id"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}
