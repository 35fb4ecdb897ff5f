package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"vergos/internal/domain"
)

const (
	summarySheet = "Summary"
	resultsSheet = "Results"
)

// WriteReportXLSX writes the report as a two-sheet workbook: a Summary
// sheet with identity and derived counts, and a Results sheet with one row
// per check result (same column set as the CSV export).
func WriteReportXLSX(w io.Writer, report *domain.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// excelize creates "Sheet1" by default; rename it to the summary sheet.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}
	if _, err := f.NewSheet(resultsSheet); err != nil {
		return fmt.Errorf("creating results sheet: %w", err)
	}

	writeSummary(f, report)
	if err := writeResults(f, report); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, report *domain.Report) {
	rows := [][]interface{}{
		{"Taxpayer ID", report.TaxpayerID},
		{"Taxpayer Name", report.TaxpayerName},
		{"Period", report.PeriodLabel},
		{"Generated At", report.GeneratedAt.Format(time.RFC3339)},
		{"Duration (ms)", report.DurationMS},
		{},
		{"Total Checks", report.Summary.Total},
		{"Passed", report.Summary.Passed},
		{"Failed", report.Summary.Failed},
		{"Skipped", report.Summary.Skipped},
		{"Partial", report.Summary.Partial},
		{"Critical Issues", report.Summary.CriticalIssues},
		{"Warnings", report.Summary.Warnings},
	}
	for i, row := range rows {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			_ = f.SetCellValue(summarySheet, cell, val)
		}
	}
}

func writeResults(f *excelize.File, report *domain.Report) error {
	for j, col := range columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("results header cell: %w", err)
		}
		if err := f.SetCellValue(resultsSheet, cell, col); err != nil {
			return fmt.Errorf("results header cell: %w", err)
		}
	}
	for i := range report.Results {
		row := resultToRow(&report.Results[i])
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("results cell: %w", err)
			}
			if err := f.SetCellValue(resultsSheet, cell, val); err != nil {
				return fmt.Errorf("results cell: %w", err)
			}
		}
	}
	return nil
}
