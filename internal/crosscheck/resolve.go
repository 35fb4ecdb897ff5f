package crosscheck

import (
	"strings"

	"vergos/internal/domain"
)

// Account code prefixes from the Turkish uniform chart of accounts
// (Tekdüzen Hesap Planı). Matching is always by prefix, never by exact
// code, because real charts subdivide these with sub-codes.
const (
	prefixCarriedForwardVAT = "190"
	prefixDeductibleVAT     = "191"
	prefixCalculatedVAT     = "391"
	prefixWithholdingTax    = "360.01"
	prefixBanks             = "102"
)

// ResolveBalance sums debit − credit over every account whose code starts
// with the given prefix. An absent trial balance or an empty match is a
// valid "not found" result, not an error; the caller decides whether that
// means skip or partial.
func ResolveBalance(tb *domain.TrialBalance, codePrefix string) (float64, []domain.Account) {
	if tb == nil {
		return 0, nil
	}
	var balance float64
	var matched []domain.Account
	for _, acc := range tb.Accounts {
		if strings.HasPrefix(acc.Code, codePrefix) {
			balance += acc.DebitBalance - acc.CreditBalance
			matched = append(matched, acc)
		}
	}
	return balance, matched
}

// bankDef ties a bank to the sub-account prefixes firms conventionally book
// it under and the name fragments that identify it in free-text account
// names. The table is ordered: banks whose aliases are substrings of other
// bank names (vakifbank vs akbank) come first so matching is deterministic.
type bankDef struct {
	key         string
	codePrefix  []string
	nameAliases []string
}

var knownBanks = []bankDef{
	{key: "vakifbank", codePrefix: []string{"102.05"}, nameAliases: []string{"vakifbank", "vakif"}},
	{key: "halkbank", codePrefix: []string{"102.06"}, nameAliases: []string{"halkbank", "halk"}},
	{key: "ziraat", codePrefix: []string{"102.01"}, nameAliases: []string{"ziraat"}},
	{key: "isbank", codePrefix: []string{"102.02"}, nameAliases: []string{"is bankasi", "isbank", "is bank"}},
	{key: "garanti", codePrefix: []string{"102.03"}, nameAliases: []string{"garanti"}},
	{key: "yapikredi", codePrefix: []string{"102.04"}, nameAliases: []string{"yapi kredi", "yapikredi"}},
	{key: "denizbank", codePrefix: []string{"102.07"}, nameAliases: []string{"denizbank", "deniz"}},
	{key: "qnb", codePrefix: []string{"102.08"}, nameAliases: []string{"qnb", "finansbank"}},
	{key: "teb", codePrefix: []string{"102.09"}, nameAliases: []string{"teb"}},
	{key: "kuveytturk", codePrefix: []string{"102.10"}, nameAliases: []string{"kuveyt"}},
	{key: "akbank", nameAliases: []string{"akbank"}},
	{key: "ing", nameAliases: []string{"ing bank", "ing"}},
	{key: "hsbc", nameAliases: []string{"hsbc"}},
}

var turkishReplacer = strings.NewReplacer(
	"ı", "i", "İ", "i", "ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g", "ü", "u", "Ü", "u",
	"ö", "o", "Ö", "o", "ç", "c", "Ç", "c",
)

// normalizeBankName folds case and Turkish diacritics so statement bank
// identifiers and ledger account names can be compared.
func normalizeBankName(s string) string {
	return strings.ToLower(turkishReplacer.Replace(strings.TrimSpace(s)))
}

// lookupBank resolves a raw statement bank identifier against the known
// bank table, tolerating full legal names like "T. İş Bankası A.Ş.".
// The second return value is false for banks not in the table.
func lookupBank(bank string) (bankDef, bool) {
	name := normalizeBankName(bank)
	for _, def := range knownBanks {
		for _, alias := range def.nameAliases {
			if strings.Contains(name, alias) {
				return def, true
			}
		}
	}
	return bankDef{}, false
}

// ResolveBankAccounts finds the ledger account(s) backing a bank statement
// with a two-phase lookup:
//
//  1. the static bank → sub-account-prefix mapping;
//  2. if nothing matched, every account under the generic 102 cash prefix
//     whose name contains a known alias for the bank.
//
// The fallback exists because charts of accounts are not standardized below
// the 102 prefix.
func ResolveBankAccounts(tb *domain.TrialBalance, bank string) (float64, []domain.Account) {
	if tb == nil {
		return 0, nil
	}

	def, known := lookupBank(bank)
	if known {
		for _, prefix := range def.codePrefix {
			if balance, matched := ResolveBalance(tb, prefix); len(matched) > 0 {
				return balance, matched
			}
		}
	}

	aliases := def.nameAliases
	if !known {
		// Unknown bank: match the normalized identifier itself.
		if name := normalizeBankName(bank); name != "" {
			aliases = []string{name}
		}
	}

	var balance float64
	var matched []domain.Account
	for _, acc := range tb.Accounts {
		if !strings.HasPrefix(acc.Code, prefixBanks) {
			continue
		}
		name := normalizeBankName(acc.Name)
		for _, alias := range aliases {
			if strings.Contains(name, alias) {
				balance += acc.DebitBalance - acc.CreditBalance
				matched = append(matched, acc)
				break
			}
		}
	}
	return balance, matched
}
