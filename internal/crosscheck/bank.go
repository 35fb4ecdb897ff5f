package crosscheck

import (
	"fmt"

	"vergos/internal/domain"
)

// BankRules returns the ledger↔bank-statement rules.
func BankRules() []Rule {
	return []Rule{bankReconciliationRule()}
}

func bankReconciliationRule() Rule {
	r := Rule{
		ID:         "bank.reconciliation",
		Name:       "Bank Closing Balance (102) vs Statement",
		Category:   domain.CategoryBank,
		Severity:   domain.SeverityCritical,
		LegalBasis: "VUK md. 171",
	}
	r.Check = func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult {
		if input.TrialBalance == nil {
			return []domain.CheckResult{r.skip("mizan", "Trial balance not provided; bank balances cannot be reconciled.")}
		}
		if len(input.Bank) == 0 {
			return []domain.CheckResult{r.skip("banka_ekstresi", "No bank statement provided; bank balances cannot be reconciled.")}
		}

		// One result per statement: a failure on one account must not be
		// hidden by success on another.
		results := make([]domain.CheckResult, 0, len(input.Bank))
		for _, stmt := range input.Bank {
			balance, matched := ResolveBankAccounts(input.TrialBalance, stmt.Bank)
			ev := []domain.Evidence{
				ledgerEvidence(input.TrialBalance, prefixBanks, balance, matched),
				{Source: stmt.SourceLabel, Field: "donem_sonu_bakiye", Value: domain.NumberValue(stmt.ClosingBalance)},
			}
			if len(matched) == 0 {
				results = append(results, r.partial(nil, fptr(stmt.ClosingBalance), ev,
					fmt.Sprintf("No 102 account could be matched to bank %q; statement balance %s could not be verified.", stmt.Bank, fmtAmount(stmt.ClosingBalance)),
					fmt.Sprintf("Name the bank's 102 sub-account after %q or add it to the bank account mapping.", stmt.Bank)))
				continue
			}
			results = append(results, r.compare(opts, balance, stmt.ClosingBalance, ev,
				fmt.Sprintf("Ledger balance %s for bank %q matches the statement closing balance %s.", fmtAmount(balance), stmt.Bank, fmtAmount(stmt.ClosingBalance)),
				fmt.Sprintf("Ledger balance %s for bank %q does not match the statement closing balance %s.", fmtAmount(balance), stmt.Bank, fmtAmount(stmt.ClosingBalance)),
				"Look for unbooked bank fees, interest accruals, or transfers posted to the wrong 102 sub-account."))
		}
		return results
	}
	return r
}
