package domain

// Action is the recommendation emitted for a campaign.
type Action string

const (
	ActionPause          Action = "Pause"
	ActionIncreaseBudget Action = "Increase Budget"
	ActionDecreaseBudget Action = "Decrease Budget"
	ActionNone           Action = "No Action"
)

// Reason explains why an Action was chosen.
type Reason string

const (
	ReasonLowCTR     Reason = "Low CTR"
	ReasonHighCPA    Reason = "High CPA"
	ReasonHighROAS   Reason = "High ROAS"
	ReasonLowROAS    Reason = "Low ROAS"
	ReasonAcceptable Reason = "Metrics within acceptable range"
)

// ActionRecord is the output row for a single campaign. Action and Reason
// are always set together.
type ActionRecord struct {
	CampaignID string `json:"campaign_id"`
	Action     Action `json:"action"`
	Reason     Reason `json:"reason"`
}
