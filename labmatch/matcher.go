package labmatch

import (
	"crypto/sha256"
	"encoding/hex"
)

// Result records one confirmed digest equality.
type Result struct {
	Identifier string
	Candidate  string
	Digest     string
}

// Match computes the SHA-256 digest of each candidate and compares it
// against every table entry. The scan is a deliberate full cross
// product; table sizes in lab use are small and the candidate count is
// already capped by ReadCandidates. Results come out in candidate
// order, then table order.
//
// Match itself is not gated. Callers exposing it must require two
// independent explicit opt-in signals before invoking it.
func Match(table Table, candidates []string) []Result {
	var hits []Result

	for _, candidate := range candidates {
		digest := Digest(candidate)
		for _, entry := range table {
			if digest == entry.Digest {
				hits = append(hits, Result{
					Identifier: entry.Identifier,
					Candidate:  candidate,
					Digest:     digest,
				})
			}
		}
	}

	return hits
}

// Digest returns the lowercase hex SHA-256 digest of a candidate.
func Digest(candidate string) string {
	sum := sha256.Sum256([]byte(candidate))
	return hex.EncodeToString(sum[:])
}
