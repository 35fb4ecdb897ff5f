package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vergos/internal/domain"
	"vergos/internal/export"
)

func fptr(v float64) *float64 { return &v }

func sampleReport() *domain.Report {
	checked := time.Date(2024, 4, 2, 10, 30, 0, 0, time.UTC)
	return &domain.Report{
		TaxpayerID:   "1234567890",
		TaxpayerName: "Örnek Ticaret A.Ş.",
		PeriodLabel:  "2024-03",
		GeneratedAt:  checked,
		Summary:      domain.Summary{Total: 2, Passed: 1, Failed: 1, CriticalIssues: 1},
		Results: []domain.CheckResult{
			{
				RuleID:   "vat.deductible",
				RuleName: "Deductible VAT (191) vs Declaration",
				Category: domain.CategoryVAT,
				Status:   domain.StatusFail,
				Severity: domain.SeverityCritical,
				Expected: fptr(12500), Actual: fptr(12510), Difference: fptr(10),
				Evidence: []domain.Evidence{
					{Source: "mizan.xlsx", Field: "191.01", Value: domain.NumberValue(12500)},
					{Source: "kdv.pdf", Field: "indirilecek_kdv", Value: domain.NumberValue(12510)},
				},
				Message:    "Ledger deductible VAT 12500.00 does not match declared domestic purchases VAT 12510.00 for 2024-03.",
				LegalBasis: "KDV Kanunu (3065) md. 29",
				CheckedAt:  checked,
			},
			{
				RuleID:    "journal.debit_total",
				RuleName:  "Journal Debit Total vs Trial Balance",
				Category:  domain.CategoryJournal,
				Status:    domain.StatusSkip,
				Severity:  domain.SeverityInfo,
				Evidence:  []domain.Evidence{{Field: "yevmiye", Value: domain.TextValue("not provided")}},
				Message:   "Journal not provided; journal totals cannot be reconciled.",
				CheckedAt: checked,
			},
		},
	}
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteReportCSV(&buf, sampleReport()))

	t.Run("starts_with_bom", func(t *testing.T) {
		assert.True(t, bytes.HasPrefix(buf.Bytes(), export.BOM))
	})

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), export.BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 results

	t.Run("header", func(t *testing.T) {
		assert.Equal(t, "Rule ID", rows[0][0])
		assert.Equal(t, "Checked At", rows[0][15])
	})

	t.Run("fail_row", func(t *testing.T) {
		row := rows[1]
		assert.Equal(t, "vat.deductible", row[0])
		assert.Equal(t, "fail", row[3])
		assert.Equal(t, "critical", row[4])
		assert.Equal(t, "12500.00", row[5])
		assert.Equal(t, "12510.00", row[6])
		assert.Equal(t, "10.00", row[7])
		assert.Equal(t, "mizan.xlsx", row[8])
		assert.Equal(t, "kdv.pdf", row[10])
		assert.Equal(t, "KDV Kanunu (3065) md. 29", row[14])
	})

	t.Run("skip_row_has_empty_amounts", func(t *testing.T) {
		row := rows[2]
		assert.Equal(t, "skip", row[3])
		assert.Empty(t, row[5])
		assert.Empty(t, row[6])
		assert.Empty(t, row[7])
		// single evidence reference: second pair stays empty
		assert.Empty(t, row[10])
	})
}
