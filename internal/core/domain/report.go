package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is a campaign row together with its metrics and recommendation.
type Evaluation struct {
	Record  CampaignRecord `json:"record"`
	Metrics DerivedMetrics `json:"metrics"`
	Action  ActionRecord   `json:"action"`
}

// Report is the outcome of one batch evaluation. Evaluations keep the order
// of the input rows.
type Report struct {
	ID          uuid.UUID    `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Source      string       `json:"source"`
	Thresholds  Thresholds   `json:"thresholds"`
	Evaluations []Evaluation `json:"evaluations"`
}

// Actions returns the ordered action records of the report.
func (r *Report) Actions() []ActionRecord {
	out := make([]ActionRecord, len(r.Evaluations))
	for i, e := range r.Evaluations {
		out[i] = e.Action
	}
	return out
}

// Summary counts how many campaigns received each action.
func (r *Report) Summary() map[Action]int {
	out := make(map[Action]int, 4)
	for _, e := range r.Evaluations {
		out[e.Action.Action]++
	}
	return out
}
