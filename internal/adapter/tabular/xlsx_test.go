package tabular

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"campaign-advisor/internal/core/domain"
	"campaign-advisor/internal/core/port"
)

func workbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		idx, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(idx)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestXLSXSourceLoad(t *testing.T) {
	buf := workbook(t, "Sheet1", [][]interface{}{
		{"Campaign_ID", "Impressions", "Clicks", "Spend", "Conversions", "Revenue"},
		{"c1", 1000, 50, 100, 10, 600},
		{"c2", 1000, 5, 200, 2, 100},
	})

	src := NewXLSXSource("upload.xlsx", buf, "")
	records, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.CampaignRecord{CampaignID: "c1", Impressions: 1000, Clicks: 50, Spend: 100, Conversions: 10, Revenue: 600}, records[0])
	assert.Equal(t, "c2", records[1].CampaignID)
}

func TestXLSXSourceActiveSheet(t *testing.T) {
	buf := workbook(t, "Campaigns", [][]interface{}{
		{"Campaign_ID", "Impressions", "Clicks", "Spend", "Conversions", "Revenue"},
		{"only", 10, 1, 1, 1, 1},
	})

	records, err := NewXLSXSource("a.xlsx", buf, "").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "only", records[0].CampaignID)
}

func TestXLSXSourceMissingField(t *testing.T) {
	buf := workbook(t, "Sheet1", [][]interface{}{
		{"Campaign_ID", "Impressions", "Clicks"},
		{"c1", 1000, 50},
	})

	_, err := NewXLSXSource("m.xlsx", buf, "Sheet1").Load(context.Background())
	assert.ErrorIs(t, err, port.ErrMissingField)
}

func TestXLSXSourceUnknownSheet(t *testing.T) {
	buf := workbook(t, "Sheet1", [][]interface{}{{"Campaign_ID"}})

	_, err := NewXLSXSource("u.xlsx", buf, "Nope").Load(context.Background())
	assert.ErrorIs(t, err, port.ErrMalformedInput)
}

func TestXLSXSourceNotAWorkbook(t *testing.T) {
	_, err := NewXLSXSource("x.xlsx", bytes.NewBufferString("plain text"), "").Load(context.Background())
	assert.ErrorIs(t, err, port.ErrMalformedInput)
}

func TestXLSXSourceFormattedNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Campaign_ID", "Impressions", "Clicks", "Spend", "Conversions", "Revenue"},
		{"c1", 12000, 150, 100, 10, 1234.5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	currency := "$#,##0.00"
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currency})
	require.NoError(t, err)
	grouped, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "B2", "C2", grouped))
	require.NoError(t, f.SetCellStyle("Sheet1", "D2", "D2", money))
	require.NoError(t, f.SetCellStyle("Sheet1", "F2", "F2", money))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := NewXLSXSource("styled.xlsx", buf, "").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CampaignRecord{CampaignID: "c1", Impressions: 12000, Clicks: 150, Spend: 100, Conversions: 10, Revenue: 1234.5}, records[0])
}
