package domain

// CheckCategory groups cross-check results by the document pair they compare.
type CheckCategory string

const (
	CategoryVAT         CheckCategory = "vat"
	CategoryWithholding CheckCategory = "withholding"
	CategoryBank        CheckCategory = "bank"
	CategoryJournal     CheckCategory = "journal"
	CategoryLedger      CheckCategory = "ledger"
)

// AllCategories lists every category in report ordering.
var AllCategories = []CheckCategory{
	CategoryVAT,
	CategoryWithholding,
	CategoryBank,
	CategoryJournal,
	CategoryLedger,
}

// CheckStatus is the outcome of a single cross-check rule evaluation.
type CheckStatus string

const (
	// StatusPass means the compared figures agree within tolerance.
	StatusPass CheckStatus = "pass"
	// StatusFail means the compared figures disagree beyond tolerance.
	StatusFail CheckStatus = "fail"
	// StatusSkip means a required document was entirely absent. It never
	// expresses "value present but zero".
	StatusSkip CheckStatus = "skip"
	// StatusPartial means the comparison could not be completed, typically
	// because the ledger-side account mapping is ambiguous or missing.
	StatusPartial CheckStatus = "partial"
)

// AllStatuses lists every status in report ordering.
var AllStatuses = []CheckStatus{StatusPass, StatusFail, StatusSkip, StatusPartial}

// CheckSeverity ranks how urgently a finding must be addressed before filing.
type CheckSeverity string

const (
	SeverityCritical CheckSeverity = "critical"
	SeverityWarning  CheckSeverity = "warning"
	SeverityInfo     CheckSeverity = "info"
)

// AllSeverities lists every severity in report ordering.
var AllSeverities = []CheckSeverity{SeverityCritical, SeverityWarning, SeverityInfo}

// DeclarationKind distinguishes an original filing from a corrective one.
type DeclarationKind string

const (
	DeclarationRegular    DeclarationKind = "regular"
	DeclarationCorrective DeclarationKind = "corrective"
)

// EvidenceKind discriminates the EvidenceValue union.
type EvidenceKind string

const (
	EvidenceNumber EvidenceKind = "number"
	EvidenceText   EvidenceKind = "text"
)
