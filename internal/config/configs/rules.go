package configs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"campaign-advisor/internal/core/domain"
)

// Rules holds the thresholds of the action cascade. File optionally points
// to a YAML document whose keys override the environment values. Unknown
// keys are rejected. Example:
//
//	target_cpa: 40
//	roas_increase: 5
type Rules struct {
	TargetCPA         float64 `env:"TARGET_CPA" envDefault:"50"`
	HighCPAMultiplier float64 `env:"HIGH_CPA_MULTIPLIER" envDefault:"3"`
	CTRMin            float64 `env:"CTR_MIN" envDefault:"1"`
	ROASIncrease      float64 `env:"ROAS_INCREASE" envDefault:"4"`
	ROASDecrease      float64 `env:"ROAS_DECREASE" envDefault:"1.5"`
	File              string  `env:"FILE"`
}

// Thresholds builds the domain thresholds, applying File when set, and
// validates the result.
func (c Rules) Thresholds() (domain.Thresholds, error) {
	th := domain.Thresholds{
		TargetCPA:         c.TargetCPA,
		HighCPAMultiplier: c.HighCPAMultiplier,
		CTRMin:            c.CTRMin,
		ROASIncrease:      c.ROASIncrease,
		ROASDecrease:      c.ROASDecrease,
	}
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return th, fmt.Errorf("read rules file: %w", err)
		}
		// keys absent from the file keep their current value
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&th); err != nil && !errors.Is(err, io.EOF) {
			return th, fmt.Errorf("parse rules file: %w", err)
		}
	}
	if err := th.Validate(); err != nil {
		return th, err
	}
	return th, nil
}
