// Package excel writes datasets and chart series as spreadsheet workbooks.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tokpee/domain/dataset"
)

// Sheet names used by the exports
const (
	DataSheet   = "Data"
	SeriesSheet = "Series"
)

const defaultSheet = "Sheet1"

// ExportDataset writes ds as a single-sheet workbook: a bold header row then
// one row per record. Numbers stay numeric; missing cells are left empty.
func ExportDataset(w io.Writer, ds *dataset.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, DataSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeHeader(f, DataSheet, ds.Columns); err != nil {
		return err
	}

	for i, row := range ds.Rows {
		cells := make([]interface{}, len(ds.Columns))
		for j, col := range ds.Columns {
			cells[j] = cellValue(row.Get(col))
		}
		if err := setRow(f, DataSheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ExportAggregation writes the series to a sheet with a column chart beside it
func ExportAggregation(w io.Writer, result dataset.AggregationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SeriesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeHeader(f, SeriesSheet, []string{result.CategoryColumn, result.ValueColumn}); err != nil {
		return err
	}
	for i, p := range result.Series {
		if err := setRow(f, SeriesSheet, i+2, []interface{}{p.Category, p.Value}); err != nil {
			return err
		}
	}

	if n := len(result.Series); n > 0 {
		last := n + 1
		chart := &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$B$1", SeriesSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", SeriesSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", SeriesSheet, last),
			}},
			Title: []excelize.RichTextRun{{
				Text: fmt.Sprintf("Rata-rata %s per %s", result.ValueColumn, result.CategoryColumn),
			}},
			Legend: excelize.ChartLegend{Position: "none"},
		}
		if err := f.AddChart(SeriesSheet, "D2", chart); err != nil {
			return fmt.Errorf("add chart: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, columns []string) error {
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func cellValue(v dataset.Value) interface{} {
	switch v.Kind {
	case dataset.KindNumber:
		return v.Num
	case dataset.KindText:
		return v.Str
	case dataset.KindBool:
		return v.Bool
	default:
		return nil
	}
}
