package analyze

import (
	"strings"
	"unicode/utf8"
)

// Policy is the closed set of password rules a candidate is checked
// against. The zero value is not useful; start from DefaultPolicy.
type Policy struct {
	MinLength     int
	RequireUpper  bool
	RequireDigit  bool
	BanSubstrings []string
}

func DefaultPolicy() Policy {
	return Policy{
		MinLength:     8,
		RequireUpper:  true,
		RequireDigit:  true,
		BanSubstrings: []string{"password", "1234"},
	}
}

// Check evaluates every policy rule against the password and returns
// whether it passed along with the failure codes in evaluation order:
// too_short, missing_upper, missing_digit, then one contains_<sub> per
// banned substring found (case-insensitive). All rules always run; the
// checks are not short-circuited.
//
// Length is measured in characters, and the upper/digit rules look for
// ASCII ranges only, matching the entropy estimator's classes.
func Check(password string, policy Policy) (bool, []string) {
	var failures []string

	if utf8.RuneCountInString(password) < policy.MinLength {
		failures = append(failures, "too_short")
	}
	if policy.RequireUpper && !containsRange(password, 'A', 'Z') {
		failures = append(failures, "missing_upper")
	}
	if policy.RequireDigit && !containsRange(password, '0', '9') {
		failures = append(failures, "missing_digit")
	}

	lower := strings.ToLower(password)
	for _, banned := range policy.BanSubstrings {
		if strings.Contains(lower, banned) {
			failures = append(failures, "contains_"+banned)
		}
	}

	return len(failures) == 0, failures
}

func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
