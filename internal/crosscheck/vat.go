package crosscheck

import (
	"fmt"
	"math"

	"vergos/internal/domain"
)

// VATRules returns the ledger↔VAT-declaration rules in evaluation order.
func VATRules() []Rule {
	return []Rule{
		deductibleVATRule(),
		calculatedVATRule(),
		carriedForwardVATRule(),
		vatArithmeticRule(),
	}
}

// regularVATs filters out corrective filings; ledger comparisons only make
// sense against original declarations.
func regularVATs(input *domain.CrossCheckInput) []domain.VATDeclaration {
	var out []domain.VATDeclaration
	for _, d := range input.VAT {
		if d.Kind == domain.DeclarationRegular {
			out = append(out, d)
		}
	}
	return out
}

// latestVAT picks the most recent filing: the one with the greatest
// non-empty period label (labels are YYYY-MM, so lexical order is
// chronological). If any filing lacks a label, submission order is trusted
// and the last element wins.
func latestVAT(decls []domain.VATDeclaration) domain.VATDeclaration {
	latest := decls[len(decls)-1]
	for _, d := range decls {
		if d.Period == "" {
			return decls[len(decls)-1]
		}
		if d.Period > latest.Period {
			latest = d
		}
	}
	return latest
}

func deductibleVATRule() Rule {
	r := Rule{
		ID:         "vat.deductible",
		Name:       "Deductible VAT (191) vs Declaration",
		Category:   domain.CategoryVAT,
		Severity:   domain.SeverityCritical,
		LegalBasis: "KDV Kanunu (3065) md. 29",
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		if input.TrialBalance == nil {
			return []domain.CheckResult{r.skip("mizan", "Trial balance not provided; deductible VAT cannot be reconciled.")}
		}
		if len(input.VAT) == 0 {
			return []domain.CheckResult{r.skip("kdv_beyanname", "No VAT declaration provided; deductible VAT cannot be reconciled.")}
		}

		balance, matched := ResolveBalance(input.TrialBalance, prefixDeductibleVAT)
		ledger := math.Abs(balance)
		ledgerEv := ledgerEvidence(input.TrialBalance, prefixDeductibleVAT, ledger, matched)

		var results []domain.CheckResult
		for _, d := range regularVATs(input) {
			declared := d.DeductibleVAT
			ev := []domain.Evidence{
				ledgerEv,
				{Source: d.SourceLabel, Field: "indirilecek_kdv", Value: domain.NumberValue(declared)},
			}
			if len(matched) == 0 {
				results = append(results, r.partial(nil, fptr(declared), ev,
					fmt.Sprintf("No ledger account under prefix %s; declared deductible VAT %s for %s could not be verified.", prefixDeductibleVAT, fmtAmount(declared), d.Period),
					"Map the firm's deductible VAT postings to a 191 sub-account in the chart of accounts."))
				continue
			}
			results = append(results, r.compare(opts, ledger, declared, ev,
				fmt.Sprintf("Ledger deductible VAT %s matches declared domestic purchases VAT %s for %s.", fmtAmount(ledger), fmtAmount(declared), d.Period),
				fmt.Sprintf("Ledger deductible VAT %s does not match declared domestic purchases VAT %s for %s.", fmtAmount(ledger), fmtAmount(declared), d.Period),
				"Compare 191 sub-account postings against the declaration's purchase VAT breakdown for the period."))
		}
		return results
	}
	return r
}

func calculatedVATRule() Rule {
	r := Rule{
		ID:         "vat.calculated",
		Name:       "Calculated VAT (391) vs Declaration",
		Category:   domain.CategoryVAT,
		Severity:   domain.SeverityCritical,
		LegalBasis: "KDV Kanunu (3065) md. 28",
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		if input.TrialBalance == nil {
			return []domain.CheckResult{r.skip("mizan", "Trial balance not provided; calculated VAT cannot be reconciled.")}
		}
		if len(input.VAT) == 0 {
			return []domain.CheckResult{r.skip("kdv_beyanname", "No VAT declaration provided; calculated VAT cannot be reconciled.")}
		}

		balance, matched := ResolveBalance(input.TrialBalance, prefixCalculatedVAT)
		// 391 is credit-normal, so the raw debit−credit balance is negative.
		ledger := math.Abs(balance)
		ledgerEv := ledgerEvidence(input.TrialBalance, prefixCalculatedVAT, ledger, matched)

		var results []domain.CheckResult
		for _, d := range regularVATs(input) {
			declared := d.CalculatedVAT
			ev := []domain.Evidence{
				ledgerEv,
				{Source: d.SourceLabel, Field: "hesaplanan_kdv", Value: domain.NumberValue(declared)},
			}
			if len(matched) == 0 {
				results = append(results, r.partial(nil, fptr(declared), ev,
					fmt.Sprintf("No ledger account under prefix %s; declared calculated VAT %s for %s could not be verified.", prefixCalculatedVAT, fmtAmount(declared), d.Period),
					"Map the firm's output VAT postings to a 391 sub-account in the chart of accounts."))
				continue
			}
			results = append(results, r.compare(opts, ledger, declared, ev,
				fmt.Sprintf("Ledger calculated VAT %s matches declared calculated VAT %s for %s.", fmtAmount(ledger), fmtAmount(declared), d.Period),
				fmt.Sprintf("Ledger calculated VAT %s does not match declared calculated VAT %s for %s.", fmtAmount(ledger), fmtAmount(declared), d.Period),
				"Compare 391 sub-account postings against the declaration's sales VAT breakdown for the period."))
		}
		return results
	}
	return r
}

func carriedForwardVATRule() Rule {
	r := Rule{
		ID:         "vat.carryforward",
		Name:       "Carried-Forward VAT (190) vs Latest Declaration",
		Category:   domain.CategoryVAT,
		Severity:   domain.SeverityCritical,
		LegalBasis: "KDV Kanunu (3065) md. 29/2",
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		if input.TrialBalance == nil {
			return []domain.CheckResult{r.skip("mizan", "Trial balance not provided; carried-forward VAT cannot be reconciled.")}
		}
		if len(input.VAT) == 0 {
			return []domain.CheckResult{r.skip("kdv_beyanname", "No VAT declaration provided; carried-forward VAT cannot be reconciled.")}
		}

		// Only the most recent filing carries the period-end balance.
		d := latestVAT(input.VAT)
		declared := d.CarriedForward

		balance, matched := ResolveBalance(input.TrialBalance, prefixCarriedForwardVAT)
		ledger := math.Abs(balance)
		ev := []domain.Evidence{
			ledgerEvidence(input.TrialBalance, prefixCarriedForwardVAT, ledger, matched),
			{Source: d.SourceLabel, Field: "devreden_kdv", Value: domain.NumberValue(declared)},
		}
		if len(matched) == 0 {
			return []domain.CheckResult{r.partial(nil, fptr(declared), ev,
				fmt.Sprintf("No ledger account under prefix %s; declared carried-forward VAT %s for %s could not be verified.", prefixCarriedForwardVAT, fmtAmount(declared), d.Period),
				"Map the firm's carried-forward VAT postings to a 190 sub-account in the chart of accounts.")}
		}
		return []domain.CheckResult{r.compare(opts, ledger, declared, ev,
			fmt.Sprintf("Ledger carried-forward VAT %s matches the latest declaration's carried-forward VAT %s (%s).", fmtAmount(ledger), fmtAmount(declared), d.Period),
			fmt.Sprintf("Ledger carried-forward VAT %s does not match the latest declaration's carried-forward VAT %s (%s).", fmtAmount(ledger), fmtAmount(declared), d.Period),
			"Verify the 190 balance was rolled forward from the prior period and that the latest filing is the final one for the period.")}
	}
	return r
}

func vatArithmeticRule() Rule {
	r := Rule{
		ID:         "vat.arithmetic",
		Name:       "Declared VAT Arithmetic",
		Category:   domain.CategoryVAT,
		Severity:   domain.SeverityWarning,
		LegalBasis: "KDV Kanunu (3065) md. 29",
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		if len(input.VAT) == 0 {
			return []domain.CheckResult{r.skip("kdv_beyanname", "No VAT declaration provided; declaration arithmetic cannot be checked.")}
		}

		var results []domain.CheckResult
		for _, d := range input.VAT {
			expected := d.CalculatedVAT - d.TotalDeductions
			if expected < 0 {
				expected = 0
			}
			ev := []domain.Evidence{
				{Source: d.SourceLabel, Field: "hesaplanan_kdv", Value: domain.NumberValue(d.CalculatedVAT)},
				{Source: d.SourceLabel, Field: "odenecek_kdv", Value: domain.NumberValue(d.PayableVAT)},
			}
			results = append(results, r.compare(opts, expected, d.PayableVAT, ev,
				fmt.Sprintf("Declared payable VAT %s is consistent with calculated VAT minus deductions for %s.", fmtAmount(d.PayableVAT), d.Period),
				fmt.Sprintf("Declared payable VAT %s differs from calculated VAT minus deductions (%s) for %s.", fmtAmount(d.PayableVAT), fmtAmount(expected), d.Period),
				"Recompute the declaration: payable VAT should equal calculated VAT minus total deductions, floored at zero."))
		}
		return results
	}
	return r
}
