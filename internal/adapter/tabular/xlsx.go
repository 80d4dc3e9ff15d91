package tabular

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
)

// XLSXSource reads campaign rows from one sheet of an XLSX workbook. The
// first row of the sheet is the header.
type XLSXSource struct {
	name  string
	r     io.Reader
	sheet string
}

// NewXLSXSource returns a source reading the workbook from r. When sheet is
// empty the active sheet is used.
func NewXLSXSource(name string, r io.Reader, sheet string) *XLSXSource {
	return &XLSXSource{name: name, r: r, sheet: sheet}
}

// Name returns the name given at construction.
func (s *XLSXSource) Name() string {
	return s.name
}

// Load opens the workbook and decodes the sheet.
func (s *XLSXSource) Load(ctx context.Context) ([]domain.CampaignRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(s.r)
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx open: %w", port.ErrMalformedInput, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	// raw values keep number formats such as "$#,##0.00" out of the cells
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx sheet %q: %w", port.ErrMalformedInput, sheet, err)
	}
	if len(rows) == 0 {
		return decode(nil, nil)
	}
	return decode(rows[0], rows[1:])
}
