// Package tabular implements port.CampaignSource over uploaded spreadsheets:
// CSV files and XLSX workbooks.
package tabular

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
)

// missingMarkers are cell values treated as an empty cell.
var missingMarkers = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

// columns maps each required field to its index in the header row.
type columns struct {
	id, impressions, clicks, spend, conversions, revenue int
}

// resolveColumns locates the required fields in header. Matching ignores
// case and surrounding spaces. Every absent field is reported in one error
// wrapping port.ErrMissingField.
func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}

	var missing []string
	find := func(name string) int {
		i, ok := idx[strings.ToLower(name)]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	cols := columns{
		id:          find("Campaign_ID"),
		impressions: find("Impressions"),
		clicks:      find("Clicks"),
		spend:       find("Spend"),
		conversions: find("Conversions"),
		revenue:     find("Revenue"),
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: %s", port.ErrMissingField, strings.Join(missing, ", "))
	}
	return cols, nil
}

// decode converts a header plus data rows into campaign records. Rows keep
// their order. Missing cells become zero.
func decode(header []string, rows [][]string) ([]domain.CampaignRecord, error) {
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CampaignRecord, 0, len(rows))
	for i, row := range rows {
		// header is line 1
		p := rowParser{row: row, line: i + 2}
		rec := domain.CampaignRecord{
			CampaignID:  p.text(cols.id),
			Impressions: p.count(cols.impressions, "Impressions"),
			Clicks:      p.count(cols.clicks, "Clicks"),
			Spend:       p.amount(cols.spend, "Spend"),
			Conversions: p.count(cols.conversions, "Conversions"),
			Revenue:     p.amount(cols.revenue, "Revenue"),
		}
		if p.err != nil {
			return nil, p.err
		}
		records = append(records, rec)
	}
	return records, nil
}

var groupedNumber = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)

// rowParser reads typed cells from one row and keeps the first error.
type rowParser struct {
	row  []string
	line int
	err  error
}

func (p *rowParser) cell(i int) string {
	if i < 0 || i >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[i])
}

func (p *rowParser) text(i int) string {
	return p.cell(i)
}

func (p *rowParser) number(i int, name string) float64 {
	if p.err != nil {
		return 0
	}
	raw := p.cell(i)
	if _, ok := missingMarkers[strings.ToLower(raw)]; ok {
		return 0
	}
	num := raw
	if strings.Contains(num, ",") {
		// only thousands grouping is accepted; "0,8" is a decimal comma
		if !groupedNumber.MatchString(num) {
			p.err = fmt.Errorf("%w: line %d column %s: %q", port.ErrInvalidValue, p.line, name, raw)
			return 0
		}
		num = strings.ReplaceAll(num, ",", "")
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		p.err = fmt.Errorf("%w: line %d column %s: %q", port.ErrInvalidValue, p.line, name, raw)
		return 0
	}
	return v
}

func (p *rowParser) amount(i int, name string) float64 {
	return p.number(i, name)
}

// count reads a whole non-negative number. Spreadsheet exports often write
// integers as "1000.0", which is accepted.
func (p *rowParser) count(i int, name string) int64 {
	v := p.number(i, name)
	if p.err != nil {
		return 0
	}
	if v != math.Trunc(v) || v >= 1<<63 {
		p.err = fmt.Errorf("%w: line %d column %s: %v is not a whole number", port.ErrInvalidValue, p.line, name, v)
		return 0
	}
	return int64(v)
}
