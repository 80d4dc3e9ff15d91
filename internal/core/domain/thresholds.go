package domain

import (
	"errors"
	"fmt"
	"math"
)

// Thresholds holds the boundaries used by the action rules. All comparisons
// against them are strict.
type Thresholds struct {
	// TargetCPA is the acceptable cost per acquisition.
	TargetCPA float64 `json:"target_cpa" yaml:"target_cpa"`
	// HighCPAMultiplier scales TargetCPA into the "High CPA" pause limit.
	HighCPAMultiplier float64 `json:"high_cpa_multiplier" yaml:"high_cpa_multiplier"`
	// CTRMin is the CTR percentage below which a campaign is paused.
	CTRMin float64 `json:"ctr_min" yaml:"ctr_min"`
	// ROASIncrease is the ROAS above which budget is increased.
	ROASIncrease float64 `json:"roas_increase" yaml:"roas_increase"`
	// ROASDecrease is the ROAS below which budget is decreased.
	ROASDecrease float64 `json:"roas_decrease" yaml:"roas_decrease"`
}

// DefaultThresholds returns target CPA 50, multiplier 3, minimum CTR 1%,
// ROAS increase above 4 and decrease below 1.5.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TargetCPA:         50,
		HighCPAMultiplier: 3,
		CTRMin:            1,
		ROASIncrease:      4,
		ROASDecrease:      1.5,
	}
}

// HighCPA returns the CPA above which a campaign is paused.
func (t Thresholds) HighCPA() float64 {
	return t.HighCPAMultiplier * t.TargetCPA
}

// Validate checks that every threshold is finite and non-negative and that
// the ROAS band is not inverted.
func (t Thresholds) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"target_cpa", t.TargetCPA},
		{"high_cpa_multiplier", t.HighCPAMultiplier},
		{"ctr_min", t.CTRMin},
		{"roas_increase", t.ROASIncrease},
		{"roas_decrease", t.ROASDecrease},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("threshold %s: invalid value %v", f.name, f.value)
		}
	}
	if t.ROASDecrease > t.ROASIncrease {
		return errors.New("threshold roas_decrease is greater than roas_increase")
	}
	return nil
}
