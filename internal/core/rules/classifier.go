package rules

import "campaign-advisor/internal/core/domain"

// Classifier applies the action cascade using a fixed set of thresholds.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	th domain.Thresholds
}

// NewClassifier returns a classifier bound to th.
func NewClassifier(th domain.Thresholds) *Classifier {
	return &Classifier{th: th}
}

// Thresholds returns the thresholds the classifier was built with.
func (c *Classifier) Thresholds() domain.Thresholds {
	return c.th
}

// Classify returns the action for one set of metrics. Rules are evaluated
// top to bottom and the first match wins, so their order is part of the
// contract:
//
//  1. CTR below the minimum pauses the campaign.
//  2. CPA above the high CPA limit pauses the campaign.
//  3. ROAS above the increase threshold increases the budget.
//  4. ROAS below the decrease threshold decreases the budget.
//  5. Anything else is left alone.
//
// An undefined CTR never triggers rule 1. An unbounded CPA or ROAS is above
// every threshold; an indeterminate one matches no rule.
func (c *Classifier) Classify(m domain.DerivedMetrics) (domain.Action, domain.Reason) {
	switch {
	case m.CTR.LessThan(c.th.CTRMin):
		return domain.ActionPause, domain.ReasonLowCTR
	case m.CPA.GreaterThan(c.th.HighCPA()):
		return domain.ActionPause, domain.ReasonHighCPA
	case m.ROAS.GreaterThan(c.th.ROASIncrease):
		return domain.ActionIncreaseBudget, domain.ReasonHighROAS
	case m.ROAS.LessThan(c.th.ROASDecrease):
		return domain.ActionDecreaseBudget, domain.ReasonLowROAS
	default:
		return domain.ActionNone, domain.ReasonAcceptable
	}
}

// Evaluate derives the metrics of rec and classifies them.
func (c *Classifier) Evaluate(rec domain.CampaignRecord) domain.Evaluation {
	m := Derive(rec)
	action, reason := c.Classify(m)
	return domain.Evaluation{
		Record:  rec,
		Metrics: m,
		Action: domain.ActionRecord{
			CampaignID: rec.CampaignID,
			Action:     action,
			Reason:     reason,
		},
	}
}

// EvaluateAll evaluates every record independently and returns one
// evaluation per record in input order.
func (c *Classifier) EvaluateAll(records []domain.CampaignRecord) []domain.Evaluation {
	out := make([]domain.Evaluation, len(records))
	for i, rec := range records {
		out[i] = c.Evaluate(rec)
	}
	return out
}
