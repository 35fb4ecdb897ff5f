package crosscheck_test

import (
	"vergos/internal/crosscheck"
	"vergos/internal/domain"
)

// validInput builds a period whose documents all reconcile under the
// default tolerance. Individual tests mutate it to produce findings.
func validInput() *domain.CrossCheckInput {
	return &domain.CrossCheckInput{
		TrialBalance: &domain.TrialBalance{
			SourceLabel:  "mizan-2024-03.xlsx",
			TaxpayerID:   "1234567890",
			TaxpayerName: "Örnek Ticaret A.Ş.",
			Period:       "2024-03",
			Accounts: []domain.Account{
				{Code: "102.01", Name: "Ziraat Bankası Vadesiz", DebitBalance: 10000, CreditBalance: 0},
				{Code: "102.50", Name: "Akbank Vadesiz", DebitBalance: 4000, CreditBalance: 0},
				{Code: "190.01", Name: "Devreden KDV", DebitBalance: 800, CreditBalance: 0},
				{Code: "191.01", Name: "İndirilecek KDV", DebitBalance: 12500, CreditBalance: 0},
				{Code: "360.01.001", Name: "Gelir Vergisi Kesintisi", DebitBalance: 0, CreditBalance: 2400},
				{Code: "391.01", Name: "Hesaplanan KDV", DebitBalance: 0, CreditBalance: 4500},
			},
			TotalDebit:  250000,
			TotalCredit: 250000,
		},
		Journal: &domain.Journal{
			SourceLabel: "yevmiye-2024-03.xlsx",
			TotalDebit:  250000,
			TotalCredit: 250000,
		},
		VAT: []domain.VATDeclaration{
			{
				SourceLabel:     "kdv-2024-03.pdf",
				TaxpayerID:      "1234567890",
				TaxpayerName:    "Örnek Ticaret A.Ş.",
				Period:          "2024-03",
				Kind:            domain.DeclarationRegular,
				DeductibleVAT:   12500.50,
				CalculatedVAT:   4500,
				TotalDeductions: 4000,
				CarriedForward:  800,
				PayableVAT:      500,
			},
		},
		Withholding: []domain.WithholdingDeclaration{
			{
				SourceLabel:    "muhtasar-2024-03.pdf",
				TaxpayerID:     "1234567890",
				TaxpayerName:   "Örnek Ticaret A.Ş.",
				Period:         "2024-03",
				Kind:           domain.DeclarationRegular,
				WithheldAmount: 2400,
				EmployeeCount:  10,
			},
		},
		Bank: []domain.BankStatement{
			{
				SourceLabel:    "akbank-2024-03.pdf",
				Bank:           "Akbank",
				AccountLabel:   "TR00 0004 6000 0000 0000 0000 01",
				ClosingBalance: 4000,
			},
		},
	}
}

// findRule returns the rule with the given id, or a zero Rule if absent.
func findRule(id string) crosscheck.Rule {
	for _, r := range crosscheck.AllRules() {
		if r.ID == id {
			return r
		}
	}
	return crosscheck.Rule{}
}

// runRule evaluates one rule against an input with default options.
func runRule(id string, input *domain.CrossCheckInput) []domain.CheckResult {
	r := findRule(id)
	if r.Check == nil {
		return nil
	}
	return r.Check(input, crosscheck.DefaultOptions())
}
