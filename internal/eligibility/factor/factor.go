// Package factor maps an applicant's controlling factor to the lookback
// window and cumulative physical-presence requirement that apply to them.
//
// This is pure lookup - no I/O. Callers must read the factor fresh from the
// master record each time since staff may correct it.
package factor

import "strings"

// Code is a controlling-factor code stored on the master record.
type Code string

const (
	// DM: date of marriage.
	DM Code = "DM"
	// SC: spouse citizen.
	SC Code = "SC"
	// LPR: lawful permanent resident, standard.
	LPR Code = "LPR"
	// LPRM: LPR via marriage.
	LPRM Code = "LPRM"
	// LPRS: LPR via spouse.
	LPRS Code = "LPRS"
)

// Default applies to unknown or missing codes.
const Default = LPR

// Rule is the window and threshold pair a code maps to.
type Rule struct {
	LookbackYears int
	DaysRequired  int
}

var (
	threeYear = Rule{LookbackYears: 3, DaysRequired: 548}
	fiveYear  = Rule{LookbackYears: 5, DaysRequired: 913}
)

// threeYearCodes is the only partition in the registry; every accessor
// goes through RuleFor so the three views cannot drift apart.
var threeYearCodes = map[Code]struct{}{
	DM: {},
	SC: {},
}

// Codes lists every known code in display order.
func Codes() []Code {
	return []Code{DM, SC, LPR, LPRM, LPRS}
}

// ParseCode normalizes text into a known code. ok is false for anything
// outside the enumeration, including empty text.
func ParseCode(text string) (Code, bool) {
	c := Code(strings.ToUpper(strings.TrimSpace(text)))
	switch c {
	case DM, SC, LPR, LPRM, LPRS:
		return c, true
	}
	return "", false
}

// RuleFor returns the rule for a code. Unknown codes get the five-year rule.
func RuleFor(c Code) Rule {
	if _, ok := threeYearCodes[c]; ok {
		return threeYear
	}
	return fiveYear
}

func LookbackYears(c Code) int { return RuleFor(c).LookbackYears }

func DaysRequired(c Code) int { return RuleFor(c).DaysRequired }

func IsThreeYear(c Code) bool { return RuleFor(c) == threeYear }

// String returns the code text.
func (c Code) String() string { return string(c) }
