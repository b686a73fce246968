package mutate

import (
	"sort"
	"strings"
)

const maxTriples = 50

// Generate expands a keyword into leetspeak variants at a bounded
// substitution level.
//
// Level 0 yields only the four base casings. Level 1 adds every variant
// with a single substituted position, level 2 adds every pair of
// positions (full cross product of their tokens), and level 3 adds the
// first 50 triples of positions using only each position's primary
// token. Levels are cumulative and the caps keep growth bounded on long
// keywords.
//
// The result is deduplicated, sorted lexicographically, and truncated
// to maxResults entries. Truncation drops entries by sort order, so the
// output is deterministic for a given input.
func Generate(word string, level, maxResults int) []string {
	variations := map[string]struct{}{}
	for _, base := range Casings(word) {
		variations[base] = struct{}{}
	}

	w := strings.ToLower(word)
	var indices []int
	for i := 0; i < len(w); i++ {
		if _, ok := Substitutions[w[i]]; ok {
			indices = append(indices, i)
		}
	}

	if level >= 1 {
		for _, i := range indices {
			for _, tok := range Substitutions[w[i]] {
				variations[substitute(w, i, tok)] = struct{}{}
			}
		}
	}

	if level >= 2 {
		for ai := 0; ai < len(indices); ai++ {
			for bi := ai + 1; bi < len(indices); bi++ {
				a, b := indices[ai], indices[bi]
				for _, ta := range Substitutions[w[a]] {
					for _, tb := range Substitutions[w[b]] {
						v := substitute(substitute(w, b, tb), a, ta)
						variations[v] = struct{}{}
					}
				}
			}
		}
	}

	if level >= 3 {
		count := 0
	triples:
		for ai := 0; ai < len(indices); ai++ {
			for bi := ai + 1; bi < len(indices); bi++ {
				for ci := bi + 1; ci < len(indices); ci++ {
					if count >= maxTriples {
						break triples
					}
					count++

					a, b, c := indices[ai], indices[bi], indices[ci]
					v := substitute(w, c, Substitutions[w[c]][0])
					v = substitute(v, b, Substitutions[w[b]][0])
					v = substitute(v, a, Substitutions[w[a]][0])
					variations[v] = struct{}{}
				}
			}
		}
	}

	results := make([]string, 0, len(variations))
	for v := range variations {
		results = append(results, v)
	}
	sort.Strings(results)

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// Casings returns the four base casings of a word: original, lower,
// upper, and capitalized (first letter upper, remainder lower).
// Collapsed duplicates are removed, e.g. for all-digit words.
func Casings(word string) []string {
	casings := []string{
		word,
		strings.ToLower(word),
		strings.ToUpper(word),
		capitalize(word),
	}

	seen := map[string]struct{}{}
	out := casings[:0]
	for _, c := range casings {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// substitute replaces the single byte at position i with the token.
// Substituting from the highest position first keeps lower indices
// valid even if a token is longer than one byte.
func substitute(word string, i int, token string) string {
	return word[:i] + token + word[i+1:]
}
