package crosscheck

import (
	"math"
	"strconv"
	"time"

	"vergos/internal/domain"
)

// Rule is one named cross-check. Metadata is static and stamped onto every
// result the rule emits; Check receives the full period input and never
// mutates it, never calls another rule, and never returns an error — every
// precondition gap degrades to a skip or partial result so the engine
// always produces a complete report.
type Rule struct {
	ID         string
	Name       string
	Category   domain.CheckCategory
	Severity   domain.CheckSeverity
	LegalBasis string
	Check      func(input *domain.CrossCheckInput, opts Options) []domain.CheckResult
}

// result stamps the rule's static metadata onto a new CheckResult.
func (r *Rule) result(status domain.CheckStatus, severity domain.CheckSeverity) domain.CheckResult {
	return domain.CheckResult{
		RuleID:     r.ID,
		RuleName:   r.Name,
		Category:   r.Category,
		Status:     status,
		Severity:   severity,
		LegalBasis: r.LegalBasis,
		CheckedAt:  time.Now().UTC(),
	}
}

// pass emits a reconciled comparison.
func (r *Rule) pass(expected, actual float64, evidence []domain.Evidence, msg string) domain.CheckResult {
	res := r.result(domain.StatusPass, r.Severity)
	res.Expected = fptr(expected)
	res.Actual = fptr(actual)
	res.Evidence = evidence
	res.Message = msg
	return res
}

// fail emits a proven discrepancy at the rule's own severity, with the
// absolute difference between the two sides.
func (r *Rule) fail(expected, actual float64, evidence []domain.Evidence, msg, suggestion string) domain.CheckResult {
	res := r.result(domain.StatusFail, r.Severity)
	res.Expected = fptr(expected)
	res.Actual = fptr(actual)
	res.Difference = fptr(math.Abs(expected - actual))
	res.Evidence = evidence
	res.Message = msg
	res.Suggestion = suggestion
	return res
}

// skip emits the single result a rule produces when a required document is
// entirely absent. Always severity info; never used for "present but zero".
func (r *Rule) skip(missing, msg string) domain.CheckResult {
	res := r.result(domain.StatusSkip, domain.SeverityInfo)
	res.Evidence = []domain.Evidence{{Field: missing, Value: domain.TextValue("not provided")}}
	res.Message = msg
	return res
}

// partial emits an inconclusive comparison: a data-quality gap such as an
// unmapped ledger account or an out-of-band swing, not a proven financial
// discrepancy. Always severity warning. The difference is set only when
// both sides are numeric.
func (r *Rule) partial(expected, actual *float64, evidence []domain.Evidence, msg, suggestion string) domain.CheckResult {
	res := r.result(domain.StatusPartial, domain.SeverityWarning)
	res.Expected = expected
	res.Actual = actual
	if expected != nil && actual != nil {
		res.Difference = fptr(math.Abs(*expected - *actual))
	}
	res.Evidence = evidence
	res.Message = msg
	res.Suggestion = suggestion
	return res
}

// compare runs the tolerance comparator and emits pass or fail.
func (r *Rule) compare(opts Options, expected, actual float64, evidence []domain.Evidence, passMsg, failMsg, suggestion string) domain.CheckResult {
	if opts.Tolerance.Within(expected, actual) {
		return r.pass(expected, actual, evidence, passMsg)
	}
	return r.fail(expected, actual, evidence, failMsg, suggestion)
}

func fptr(v float64) *float64 { return &v }

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ledgerEvidence describes the ledger side of a comparison: the matched
// account codes under a prefix, or the bare prefix when nothing matched.
func ledgerEvidence(tb *domain.TrialBalance, codePrefix string, balance float64, matched []domain.Account) domain.Evidence {
	source := ""
	if tb != nil {
		source = tb.SourceLabel
	}
	field := codePrefix
	if len(matched) > 0 {
		codes := make([]string, len(matched))
		for i, acc := range matched {
			codes[i] = acc.Code
		}
		field = joinCodes(codes)
	}
	return domain.Evidence{Source: source, Field: field, Value: domain.NumberValue(balance)}
}

func joinCodes(codes []string) string {
	out := codes[0]
	for _, c := range codes[1:] {
		out += "+" + c
	}
	return out
}
