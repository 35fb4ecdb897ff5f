package domain

import "time"

// Account is one row of a trial balance: an account code with its
// accumulated debit and credit balances for the period.
type Account struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	DebitBalance  float64 `json:"debit_balance"`
	CreditBalance float64 `json:"credit_balance"`
}

// TrialBalance (mizan) is the full ledger snapshot for a period, plus the
// totals the accounting software declared for it.
type TrialBalance struct {
	SourceLabel  string    `json:"source_label"`
	TaxpayerID   string    `json:"taxpayer_id"`
	TaxpayerName string    `json:"taxpayer_name"`
	Period       string    `json:"period"`
	Accounts     []Account `json:"accounts"`
	TotalDebit   float64   `json:"total_debit"`
	TotalCredit  float64   `json:"total_credit"`
}

// Journal (yevmiye) carries only the declared totals of the chronological
// transaction log; the cross-check never needs individual entries.
type Journal struct {
	SourceLabel string  `json:"source_label"`
	TotalDebit  float64 `json:"total_debit"`
	TotalCredit float64 `json:"total_credit"`
}

// VATDeclaration is one KDV beyanname filing for the period.
type VATDeclaration struct {
	SourceLabel     string          `json:"source_label"`
	TaxpayerID      string          `json:"taxpayer_id"`
	TaxpayerName    string          `json:"taxpayer_name"`
	Period          string          `json:"period"`
	Kind            DeclarationKind `json:"kind"`
	DeductibleVAT   float64         `json:"deductible_vat"`
	CalculatedVAT   float64         `json:"calculated_vat"`
	TotalDeductions float64         `json:"total_deductions"`
	CarriedForward  float64         `json:"carried_forward_vat"`
	PayableVAT      float64         `json:"payable_vat"`
}

// WithholdingDeclaration is one muhtasar filing for the period.
type WithholdingDeclaration struct {
	SourceLabel    string          `json:"source_label"`
	TaxpayerID     string          `json:"taxpayer_id"`
	TaxpayerName   string          `json:"taxpayer_name"`
	Period         string          `json:"period"`
	Kind           DeclarationKind `json:"kind"`
	WithheldAmount float64         `json:"withheld_amount"`
	EmployeeCount  int             `json:"employee_count"`
}

// BankStatement is a third-party-issued closing balance for one bank account.
type BankStatement struct {
	SourceLabel    string  `json:"source_label"`
	Bank           string  `json:"bank"`
	AccountLabel   string  `json:"account_label"`
	ClosingBalance float64 `json:"closing_balance"`
}

// CrossCheckInput is the engine's sole input: every independently-sourced
// document of one reporting period, already parsed by the ingestion side.
// Any document may be absent; the rules degrade to skip/partial results.
type CrossCheckInput struct {
	TrialBalance *TrialBalance            `json:"trial_balance,omitempty"`
	Journal      *Journal                 `json:"journal,omitempty"`
	VAT          []VATDeclaration         `json:"vat_declarations,omitempty"`
	Withholding  []WithholdingDeclaration `json:"withholding_declarations,omitempty"`
	Bank         []BankStatement          `json:"bank_statements,omitempty"`
}

// EvidenceValue is a closed number-or-text union so consumers can format
// evidence without runtime type inspection.
type EvidenceValue struct {
	Kind   EvidenceKind `json:"kind"`
	Number float64      `json:"number,omitempty"`
	Text   string       `json:"text,omitempty"`
}

// NumberValue builds a numeric evidence value.
func NumberValue(v float64) EvidenceValue {
	return EvidenceValue{Kind: EvidenceNumber, Number: v}
}

// TextValue builds a textual evidence value.
func TextValue(s string) EvidenceValue {
	return EvidenceValue{Kind: EvidenceText, Text: s}
}

// Evidence ties a compared figure back to the document it came from.
type Evidence struct {
	Source string        `json:"source"`
	Field  string        `json:"field"`
	Value  EvidenceValue `json:"value"`
}

// CheckResult is the atomic output unit of the engine: one classified
// comparison, immutable once emitted.
//
// Expected, Actual and Difference are pointers because nil means "not
// applicable", which is distinct from 0. Difference is set if and only if
// the status is fail or partial and both sides are numeric.
type CheckResult struct {
	RuleID     string        `json:"rule_id"`
	RuleName   string        `json:"rule_name"`
	Category   CheckCategory `json:"category"`
	Status     CheckStatus   `json:"status"`
	Severity   CheckSeverity `json:"severity"`
	Expected   *float64      `json:"expected"`
	Actual     *float64      `json:"actual"`
	Difference *float64      `json:"difference,omitempty"`
	Evidence   []Evidence    `json:"evidence"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion,omitempty"`
	LegalBasis string        `json:"legal_basis,omitempty"`
	CheckedAt  time.Time     `json:"checked_at"`
}

// Summary holds the derived aggregate counts of a report. It is recomputed
// from the result list on every run and never stored independently of it.
type Summary struct {
	Total          int `json:"total"`
	Passed         int `json:"passed"`
	Failed         int `json:"failed"`
	Skipped        int `json:"skipped"`
	Partial        int `json:"partial"`
	CriticalIssues int `json:"critical_issues"`
	Warnings       int `json:"warnings"`
}

// Report is the engine's sole output artifact. Results is the source of
// truth; the ByCategory/BySeverity/ByStatus maps are derived views over the
// same result values, not partitions.
//
// Taxpayer identity is extracted from the first document that carries it
// (VAT filing, then withholding filing, then trial balance); empty strings
// mean no document carried identity — the engine never fabricates it.
type Report struct {
	TaxpayerID   string                          `json:"taxpayer_id"`
	TaxpayerName string                          `json:"taxpayer_name"`
	PeriodLabel  string                          `json:"period_label"`
	GeneratedAt  time.Time                       `json:"generated_at"`
	DurationMS   int64                           `json:"duration_ms"`
	Summary      Summary                         `json:"summary"`
	Results      []CheckResult                   `json:"results"`
	ByCategory   map[CheckCategory][]CheckResult `json:"by_category"`
	BySeverity   map[CheckSeverity][]CheckResult `json:"by_severity"`
	ByStatus     map[CheckStatus][]CheckResult   `json:"by_status"`
}
