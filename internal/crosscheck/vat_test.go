package crosscheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vergos/internal/domain"
)

func TestVATRules_Metadata(t *testing.T) {
	for _, id := range []string{"vat.deductible", "vat.calculated", "vat.carryforward", "vat.arithmetic"} {
		r := findRule(id)
		require.NotNil(t, r.Check, "rule %s must exist", id)
		assert.Equal(t, domain.CategoryVAT, r.Category)
		assert.NotEmpty(t, r.Name)
	}
	assert.Equal(t, domain.SeverityCritical, findRule("vat.deductible").Severity)
	assert.Equal(t, domain.SeverityWarning, findRule("vat.arithmetic").Severity)
}

func TestDeductibleVAT(t *testing.T) {
	t.Run("pass_within_tolerance", func(t *testing.T) {
		// Ledger 12,500.00 vs declared 12,500.50: difference 0.50 is inside
		// the default ±1.00 absolute tolerance.
		results := runRule("vat.deductible", validInput())
		require.Len(t, results, 1)
		res := results[0]
		assert.Equal(t, domain.StatusPass, res.Status)
		require.NotNil(t, res.Expected)
		require.NotNil(t, res.Actual)
		assert.Equal(t, 12500.0, *res.Expected)
		assert.Equal(t, 12500.50, *res.Actual)
		assert.Nil(t, res.Difference)
	})

	t.Run("fail_beyond_tolerance", func(t *testing.T) {
		input := validInput()
		input.VAT[0].DeductibleVAT = 12510.00
		results := runRule("vat.deductible", input)
		require.Len(t, results, 1)
		res := results[0]
		assert.Equal(t, domain.StatusFail, res.Status)
		assert.Equal(t, domain.SeverityCritical, res.Severity)
		require.NotNil(t, res.Difference)
		assert.Equal(t, 10.0, *res.Difference)
		assert.NotEmpty(t, res.Suggestion)
	})

	t.Run("skip_without_trial_balance", func(t *testing.T) {
		input := validInput()
		input.TrialBalance = nil
		results := runRule("vat.deductible", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusSkip, results[0].Status)
		assert.Equal(t, domain.SeverityInfo, results[0].Severity)
		assert.Nil(t, results[0].Expected)
		assert.Nil(t, results[0].Actual)
	})

	t.Run("skip_without_declarations", func(t *testing.T) {
		input := validInput()
		input.VAT = nil
		results := runRule("vat.deductible", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusSkip, results[0].Status)
	})

	t.Run("corrective_filings_not_compared", func(t *testing.T) {
		input := validInput()
		input.VAT = append(input.VAT, domain.VATDeclaration{
			SourceLabel:   "kdv-2024-03-duzeltme.pdf",
			Period:        "2024-03",
			Kind:          domain.DeclarationCorrective,
			DeductibleVAT: 99999,
		})
		results := runRule("vat.deductible", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})

	t.Run("one_result_per_filing", func(t *testing.T) {
		input := validInput()
		second := input.VAT[0]
		second.Period = "2024-04"
		second.DeductibleVAT = 999
		input.VAT = append(input.VAT, second)
		results := runRule("vat.deductible", input)
		require.Len(t, results, 2)
		assert.Equal(t, domain.StatusPass, results[0].Status)
		assert.Equal(t, domain.StatusFail, results[1].Status)
	})

	t.Run("partial_when_ledger_unmapped", func(t *testing.T) {
		input := validInput()
		var accounts []domain.Account
		for _, acc := range input.TrialBalance.Accounts {
			if acc.Code != "191.01" {
				accounts = append(accounts, acc)
			}
		}
		input.TrialBalance.Accounts = accounts
		results := runRule("vat.deductible", input)
		require.Len(t, results, 1)
		res := results[0]
		assert.Equal(t, domain.StatusPartial, res.Status)
		assert.Equal(t, domain.SeverityWarning, res.Severity)
		assert.Nil(t, res.Expected)
		require.NotNil(t, res.Actual)
		assert.Nil(t, res.Difference)
	})

	t.Run("evidence_carries_provenance", func(t *testing.T) {
		results := runRule("vat.deductible", validInput())
		require.Len(t, results, 1)
		require.Len(t, results[0].Evidence, 2)
		assert.Equal(t, "mizan-2024-03.xlsx", results[0].Evidence[0].Source)
		assert.Equal(t, "kdv-2024-03.pdf", results[0].Evidence[1].Source)
		assert.Equal(t, domain.EvidenceNumber, results[0].Evidence[1].Value.Kind)
	})
}

func TestCalculatedVAT(t *testing.T) {
	t.Run("credit_balance_compared_absolute", func(t *testing.T) {
		results := runRule("vat.calculated", validInput())
		require.Len(t, results, 1)
		res := results[0]
		assert.Equal(t, domain.StatusPass, res.Status)
		require.NotNil(t, res.Expected)
		assert.Equal(t, 4500.0, *res.Expected)
	})

	t.Run("fail_on_mismatch", func(t *testing.T) {
		input := validInput()
		input.VAT[0].CalculatedVAT = 5000
		results := runRule("vat.calculated", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusFail, results[0].Status)
		require.NotNil(t, results[0].Difference)
		assert.Equal(t, 500.0, *results[0].Difference)
	})
}

func TestCarriedForwardVAT(t *testing.T) {
	t.Run("pass_against_latest_filing", func(t *testing.T) {
		results := runRule("vat.carryforward", validInput())
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})

	t.Run("only_latest_filing_checked", func(t *testing.T) {
		input := validInput()
		older := input.VAT[0]
		older.Period = "2024-02"
		older.CarriedForward = 99999 // stale balance on the older filing must not matter
		input.VAT = append([]domain.VATDeclaration{older}, input.VAT...)
		results := runRule("vat.carryforward", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})

	t.Run("latest_resolved_by_period_not_order", func(t *testing.T) {
		input := validInput()
		older := input.VAT[0]
		older.Period = "2024-02"
		older.CarriedForward = 99999
		newer := input.VAT[0]
		newer.Period = "2024-03"
		newer.CarriedForward = 800
		// Newer filing listed first: period labels decide, not list order.
		input.VAT = []domain.VATDeclaration{newer, older}
		results := runRule("vat.carryforward", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})

	t.Run("missing_period_labels_trust_list_order", func(t *testing.T) {
		input := validInput()
		first := input.VAT[0]
		first.Period = ""
		first.CarriedForward = 99999
		last := input.VAT[0]
		last.Period = ""
		last.CarriedForward = 800
		input.VAT = []domain.VATDeclaration{first, last}
		results := runRule("vat.carryforward", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})
}

func TestVATArithmetic(t *testing.T) {
	t.Run("pass_consistent_declaration", func(t *testing.T) {
		// calculated 4500 − deductions 4000 = payable 500
		results := runRule("vat.arithmetic", validInput())
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})

	t.Run("fail_is_warning_not_critical", func(t *testing.T) {
		input := validInput()
		input.VAT[0].PayableVAT = 900
		results := runRule("vat.arithmetic", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusFail, results[0].Status)
		assert.Equal(t, domain.SeverityWarning, results[0].Severity)
	})

	t.Run("payable_floored_at_zero", func(t *testing.T) {
		input := validInput()
		input.VAT[0].TotalDeductions = 9000 // deductions exceed calculated VAT
		input.VAT[0].PayableVAT = 0
		results := runRule("vat.arithmetic", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})

	t.Run("no_trial_balance_needed", func(t *testing.T) {
		input := validInput()
		input.TrialBalance = nil
		results := runRule("vat.arithmetic", input)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StatusPass, results[0].Status)
	})
}
