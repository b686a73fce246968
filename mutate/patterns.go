package mutate

import "sort"

// CommonPatterns is the fragment list used by the general pattern pass.
var CommonPatterns = []string{"123", "2023", "!", "@", "#", "admin", "secure"}

// seedFragments is the canonical weak-password list used to seed a
// keyword before the general pattern pass runs.
var seedFragments = []string{"123", "password", "admin", "user", "secure", "qwerty", "letmein"}

// CombineWithPatterns emits word+pattern, pattern+word, and
// word_pattern for every word/pattern combination. The input words are
// retained unmodified in the result, which is sorted and deduplicated.
func CombineWithPatterns(words, patterns []string) []string {
	result := map[string]struct{}{}
	for _, w := range words {
		result[w] = struct{}{}
		for _, p := range patterns {
			result[w+p] = struct{}{}
			result[p+w] = struct{}{}
			result[w+"_"+p] = struct{}{}
		}
	}
	return sortedKeys(result)
}

// SeedCommonPasswords concatenates each base casing of the keyword with
// each canonical weak fragment, in both prefix and suffix order.
func SeedCommonPasswords(keyword string) []string {
	out := map[string]struct{}{}
	for _, v := range Casings(keyword) {
		for _, p := range seedFragments {
			out[v+p] = struct{}{}
			out[p+v] = struct{}{}
		}
	}
	return sortedKeys(out)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
