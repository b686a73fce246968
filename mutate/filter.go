package mutate

import "regexp"

// Filter drops candidates whose length falls outside [minLen, maxLen].
// When allow is non-nil, candidates without a match are dropped too.
// Survivors keep their relative order.
func Filter(words []string, minLen, maxLen int, allow *regexp.Regexp) []string {
	out := []string{}
	for _, w := range words {
		if len(w) < minLen || len(w) > maxLen {
			continue
		}
		if allow != nil && !allow.MatchString(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
