package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// MetricState tells whether a ratio metric has a finite value.
type MetricState uint8

const (
	// Defined means Value holds a finite ratio.
	Defined MetricState = iota
	// Unbounded is a positive numerator over a zero denominator. It compares
	// greater than every threshold and less than none.
	Unbounded
	// Indeterminate is a zero numerator over a zero denominator. It compares
	// neither greater nor less than any threshold.
	Indeterminate
)

// Metric is a ratio that may be undefined because its denominator was zero.
type Metric struct {
	Value float64
	State MetricState
}

// Ratio divides num by den and returns the tagged result. A negative
// numerator over zero is treated like zero over zero, since none of the
// inputs are expected to be negative.
func Ratio(num, den float64) Metric {
	if den == 0 {
		if num > 0 {
			return Metric{State: Unbounded}
		}
		return Metric{State: Indeterminate}
	}
	v := num / den
	if math.IsInf(v, 1) {
		return Metric{State: Unbounded}
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return Metric{State: Indeterminate}
	}
	return Metric{Value: v}
}

// Of wraps a finite value.
func Of(v float64) Metric {
	return Metric{Value: v}
}

// IsDefined reports whether m carries a finite value.
func (m Metric) IsDefined() bool {
	return m.State == Defined
}

// GreaterThan reports whether m > threshold.
func (m Metric) GreaterThan(threshold float64) bool {
	switch m.State {
	case Defined:
		return m.Value > threshold
	case Unbounded:
		return true
	default:
		return false
	}
}

// LessThan reports whether m < threshold.
func (m Metric) LessThan(threshold float64) bool {
	if m.State != Defined {
		return false
	}
	return m.Value < threshold
}

// String formats the metric with two decimals, "inf" or "n/a".
func (m Metric) String() string {
	switch m.State {
	case Unbounded:
		return "inf"
	case Indeterminate:
		return "n/a"
	default:
		return strconv.FormatFloat(m.Value, 'f', 2, 64)
	}
}

// MarshalJSON encodes a defined metric as a number, an unbounded one as the
// string "inf" and an indeterminate one as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	switch m.State {
	case Unbounded:
		return []byte(`"inf"`), nil
	case Indeterminate:
		return []byte("null"), nil
	default:
		return json.Marshal(m.Value)
	}
}

// DerivedMetrics are the efficiency ratios computed for a CampaignRecord.
type DerivedMetrics struct {
	// CTR is clicks / impressions * 100.
	CTR Metric `json:"ctr"`
	// CPA is spend / conversions.
	CPA Metric `json:"cpa"`
	// ROAS is revenue / spend.
	ROAS Metric `json:"roas"`
}
