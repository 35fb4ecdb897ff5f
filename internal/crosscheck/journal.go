package crosscheck

import (
	"fmt"

	"vergos/internal/domain"
)

// JournalRules returns the trial-balance↔journal total rules. These are the
// only rules that compare document-level declared totals rather than
// account-level sums.
func JournalRules() []Rule {
	return []Rule{
		journalTotalRule("journal.debit_total", "Journal Debit Total vs Trial Balance", "borc_toplami",
			func(tb *domain.TrialBalance) float64 { return tb.TotalDebit },
			func(j *domain.Journal) float64 { return j.TotalDebit }),
		journalTotalRule("journal.credit_total", "Journal Credit Total vs Trial Balance", "alacak_toplami",
			func(tb *domain.TrialBalance) float64 { return tb.TotalCredit },
			func(j *domain.Journal) float64 { return j.TotalCredit }),
	}
}

func journalTotalRule(id, name, field string, tbTotal func(*domain.TrialBalance) float64, jTotal func(*domain.Journal) float64) Rule {
	r := Rule{
		ID:         id,
		Name:       name,
		Category:   domain.CategoryJournal,
		Severity:   domain.SeverityCritical,
		LegalBasis: "VUK md. 183",
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		if input.TrialBalance == nil {
			return []domain.CheckResult{r.skip("mizan", "Trial balance not provided; journal totals cannot be reconciled.")}
		}
		if input.Journal == nil {
			return []domain.CheckResult{r.skip("yevmiye", "Journal not provided; journal totals cannot be reconciled.")}
		}

		expected := tbTotal(input.TrialBalance)
		actual := jTotal(input.Journal)
		ev := []domain.Evidence{
			{Source: input.TrialBalance.SourceLabel, Field: field, Value: domain.NumberValue(expected)},
			{Source: input.Journal.SourceLabel, Field: field, Value: domain.NumberValue(actual)},
		}
		return []domain.CheckResult{r.compare(opts, expected, actual, ev,
			fmt.Sprintf("Trial balance total %s matches the journal total %s.", fmtAmount(expected), fmtAmount(actual)),
			fmt.Sprintf("Trial balance total %s does not match the journal total %s.", fmtAmount(expected), fmtAmount(actual)),
			"Re-post the journal to the ledger; a totals mismatch usually means entries were edited after posting.")}
	}
	return r
}
