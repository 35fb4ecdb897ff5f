package crosscheck

import (
	"fmt"
	"math"

	"vergos/internal/domain"
)

// WithholdingRules returns the ledger↔muhtasar rules in evaluation order.
func WithholdingRules() []Rule {
	return []Rule{
		withholdingTotalRule(),
		headcountStabilityRule(),
	}
}

func withholdingTotalRule() Rule {
	r := Rule{
		ID:         "withholding.total",
		Name:       "Withheld Tax (360.01) vs Declarations",
		Category:   domain.CategoryWithholding,
		Severity:   domain.SeverityCritical,
		LegalBasis: "GVK md. 94, VUK md. 341",
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		if input.TrialBalance == nil {
			return []domain.CheckResult{r.skip("mizan", "Trial balance not provided; withheld tax cannot be reconciled.")}
		}
		if len(input.Withholding) == 0 {
			return []domain.CheckResult{r.skip("muhtasar", "No withholding declaration provided; withheld tax cannot be reconciled.")}
		}

		// Unlike the VAT rules this is a many-to-one aggregation: the 360.01
		// balance covers every regular filing of the period combined.
		var declared float64
		var labels []string
		for _, d := range input.Withholding {
			if d.Kind == domain.DeclarationRegular {
				declared += d.WithheldAmount
				labels = append(labels, d.SourceLabel)
			}
		}
		if len(labels) == 0 {
			return nil
		}

		balance, matched := ResolveBalance(input.TrialBalance, prefixWithholdingTax)
		// 360 is credit-normal.
		ledger := math.Abs(balance)
		ev := []domain.Evidence{
			ledgerEvidence(input.TrialBalance, prefixWithholdingTax, ledger, matched),
			{Source: joinCodes(labels), Field: "kesinti_toplami", Value: domain.NumberValue(declared)},
		}
		if len(matched) == 0 {
			return []domain.CheckResult{r.partial(nil, fptr(declared), ev,
				fmt.Sprintf("No ledger account under prefix %s; declared withheld tax %s could not be verified.", prefixWithholdingTax, fmtAmount(declared)),
				"Map payroll and vendor withholding postings to a 360.01 sub-account in the chart of accounts.")}
		}
		return []domain.CheckResult{r.compare(opts, ledger, declared, ev,
			fmt.Sprintf("Ledger withheld tax %s matches the %d regular filing(s) totalling %s.", fmtAmount(ledger), len(labels), fmtAmount(declared)),
			fmt.Sprintf("Ledger withheld tax %s does not match the %d regular filing(s) totalling %s.", fmtAmount(ledger), len(labels), fmtAmount(declared)),
			"Check for withholding postings booked outside 360.01 or filings missing from the period.")}
	}
	return r
}

func headcountStabilityRule() Rule {
	r := Rule{
		ID:       "withholding.headcount_stability",
		Name:     "Headcount Stability Across Filings",
		Category: domain.CategoryWithholding,
		Severity: domain.SeverityWarning,
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		// No precondition and no skip: fewer than two filings means the rule
		// silently has no opinion, which the engine treats as distinct from
		// an explicit skip.
		if len(input.Withholding) < 2 {
			return nil
		}

		var results []domain.CheckResult
		for i := 1; i < len(input.Withholding); i++ {
			prev, cur := input.Withholding[i-1], input.Withholding[i]
			ev := []domain.Evidence{
				{Source: prev.SourceLabel, Field: "calisan_sayisi", Value: domain.NumberValue(float64(prev.EmployeeCount))},
				{Source: cur.SourceLabel, Field: "calisan_sayisi", Value: domain.NumberValue(float64(cur.EmployeeCount))},
			}

			swung := false
			if prev.EmployeeCount == 0 {
				// A zero baseline makes any nonzero headcount an unbounded swing.
				swung = cur.EmployeeCount != 0
			} else {
				change := math.Abs(float64(cur.EmployeeCount-prev.EmployeeCount)) / float64(prev.EmployeeCount)
				swung = change > opts.HeadcountSwingThreshold
			}

			if swung {
				results = append(results, r.partial(
					fptr(float64(prev.EmployeeCount)), fptr(float64(cur.EmployeeCount)), ev,
					fmt.Sprintf("Headcount moved from %d to %d between consecutive filings, beyond the %.0f%% threshold.", prev.EmployeeCount, cur.EmployeeCount, opts.HeadcountSwingThreshold*100),
					"Confirm the hires or departures behind the swing are reflected in payroll records."))
			} else {
				results = append(results, r.pass(float64(prev.EmployeeCount), float64(cur.EmployeeCount), ev,
					fmt.Sprintf("Headcount moved from %d to %d between consecutive filings, within the %.0f%% threshold.", prev.EmployeeCount, cur.EmployeeCount, opts.HeadcountSwingThreshold*100)))
			}
		}
		return results
	}
	return r
}
