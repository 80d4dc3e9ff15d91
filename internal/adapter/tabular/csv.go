package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
)

// CSVSource reads campaign rows from a CSV stream whose first line is the
// header. The stream is consumed by the first call to Load.
type CSVSource struct {
	name string
	r    io.Reader
}

// NewCSVSource returns a source reading from r. name is used in reports.
func NewCSVSource(name string, r io.Reader) *CSVSource {
	return &CSVSource{name: name, r: r}
}

// Name returns the name given at construction.
func (s *CSVSource) Name() string {
	return s.name
}

// Load parses the whole stream.
func (s *CSVSource) Load(ctx context.Context) ([]domain.CampaignRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cr := csv.NewReader(s.r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv read: %w", port.ErrMalformedInput, err)
	}
	if len(records) == 0 {
		return decode(nil, nil)
	}
	return decode(records[0], records[1:])
}
