package crosscheck

import (
	"time"

	"vergos/internal/domain"
)

// Engine runs every rule module over one period's documents and builds the
// aggregate report. It holds no cross-invocation state and performs no I/O;
// Run is a pure function of its input apart from the embedded timestamps.
type Engine struct {
	opts  Options
	rules []Rule
}

// NewEngine creates an engine with the given threshold options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts, rules: AllRules()}
}

// AllRules returns every rule in the fixed execution order: VAT,
// withholding, bank, journal. The order matches typical audit-reviewer
// priority and is otherwise not significant.
func AllRules() []Rule {
	var rules []Rule
	rules = append(rules, VATRules()...)
	rules = append(rules, WithholdingRules()...)
	rules = append(rules, BankRules()...)
	rules = append(rules, JournalRules()...)
	return rules
}

// Run evaluates every rule against the input and assembles the report.
// It never fails: missing documents surface as skip results, unresolvable
// ledger mappings as partial results.
func (e *Engine) Run(input *domain.CrossCheckInput) *domain.Report {
	start := time.Now()
	if input == nil {
		input = &domain.CrossCheckInput{}
	}

	var results []domain.CheckResult
	for i := range e.rules {
		results = append(results, e.rules[i].Check(input, e.opts)...)
	}

	report := &domain.Report{
		GeneratedAt: start.UTC(),
		Summary:     summarize(results),
		Results:     results,
		ByCategory:  make(map[domain.CheckCategory][]domain.CheckResult),
		BySeverity:  make(map[domain.CheckSeverity][]domain.CheckResult),
		ByStatus:    make(map[domain.CheckStatus][]domain.CheckResult),
	}
	for _, res := range results {
		report.ByCategory[res.Category] = append(report.ByCategory[res.Category], res)
		report.BySeverity[res.Severity] = append(report.BySeverity[res.Severity], res)
		report.ByStatus[res.Status] = append(report.ByStatus[res.Status], res)
	}

	report.TaxpayerID, report.TaxpayerName, report.PeriodLabel = extractIdentity(input)
	report.DurationMS = time.Since(start).Milliseconds()
	return report
}

// summarize recomputes every aggregate from the result list. Counts are
// derived views, never stored independently of the results.
func summarize(results []domain.CheckResult) domain.Summary {
	s := domain.Summary{Total: len(results)}
	for _, res := range results {
		switch res.Status {
		case domain.StatusPass:
			s.Passed++
		case domain.StatusFail:
			s.Failed++
		case domain.StatusSkip:
			s.Skipped++
		case domain.StatusPartial:
			s.Partial++
		}
		if res.Severity == domain.SeverityCritical && res.Status == domain.StatusFail {
			s.CriticalIssues++
		}
		if res.Severity == domain.SeverityWarning && (res.Status == domain.StatusFail || res.Status == domain.StatusPartial) {
			s.Warnings++
		}
	}
	return s
}

// extractIdentity pulls taxpayer identity from the first document that
// carries it, preferring VAT filings, then withholding filings, then the
// trial balance. Fields stay empty when no document carries identity.
func extractIdentity(input *domain.CrossCheckInput) (id, name, period string) {
	if len(input.VAT) > 0 {
		d := input.VAT[0]
		return d.TaxpayerID, d.TaxpayerName, d.Period
	}
	if len(input.Withholding) > 0 {
		d := input.Withholding[0]
		return d.TaxpayerID, d.TaxpayerName, d.Period
	}
	if input.TrialBalance != nil {
		tb := input.TrialBalance
		return tb.TaxpayerID, tb.TaxpayerName, tb.Period
	}
	return "", "", ""
}
