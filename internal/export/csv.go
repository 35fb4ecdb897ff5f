// Package export serializes a cross-check report for download. Writers
// reproduce the report as given: every value comes straight off the
// CheckResult fields, nothing is recomputed.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"vergos/internal/domain"
)

// BOM is the UTF-8 byte-order mark, prepended for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (16 columns).
var columns = []string{
	"Rule ID",
	"Rule Name",
	"Category",
	"Status",
	"Severity",
	"Expected",
	"Actual",
	"Difference",
	"Evidence 1 Source",
	"Evidence 1 Field",
	"Evidence 2 Source",
	"Evidence 2 Field",
	"Message",
	"Suggestion",
	"Legal Basis",
	"Checked At",
}

// CSVWriter wraps csv.Writer for exporting report results as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResults converts the report's results to CSV rows and writes them.
func (w *CSVWriter) WriteResults(report *domain.Report) error {
	for i := range report.Results {
		if err := w.csv.Write(resultToRow(&report.Results[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteReportCSV streams a complete CSV document (BOM, header, rows) to w.
func WriteReportCSV(w io.Writer, report *domain.Report) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteResults(report); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// resultToRow converts a single check result to a 16-element string slice.
// Nil expected/actual/difference values become empty cells, never "0".
func resultToRow(res *domain.CheckResult) []string {
	row := make([]string, len(columns))
	row[0] = res.RuleID
	row[1] = res.RuleName
	row[2] = string(res.Category)
	row[3] = string(res.Status)
	row[4] = string(res.Severity)
	row[5] = formatOptMoney(res.Expected)
	row[6] = formatOptMoney(res.Actual)
	row[7] = formatOptMoney(res.Difference)
	if len(res.Evidence) > 0 {
		row[8] = res.Evidence[0].Source
		row[9] = res.Evidence[0].Field
	}
	if len(res.Evidence) > 1 {
		row[10] = res.Evidence[1].Source
		row[11] = res.Evidence[1].Field
	}
	row[12] = res.Message
	row[13] = res.Suggestion
	row[14] = res.LegalBasis
	row[15] = res.CheckedAt.Format(time.RFC3339)
	return row
}

func formatOptMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
