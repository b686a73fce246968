package analyze

import (
	"math"
	"strings"
	"unicode/utf8"
)

// weakSubstrings cost a flat 10-bit penalty when any of them appears
// in the lowercased password.
var weakSubstrings = []string{"123", "password", "qwerty", "admin", "letmein"}

const weakPenaltyBits = 10.0

// EstimateEntropy returns a coarse bit-strength score for a password.
//
// The effective alphabet size is the sum of contributions for each
// character class present (ASCII lowercase 26, ASCII uppercase 26,
// ASCII digits 10, anything else 32) and the score is character count
// times log2(alphabet), minus a flat 10-bit penalty when a well-known
// weak substring appears. The result is clamped at 0 and an empty
// password scores 0.
//
// The classes are deliberately ASCII ranges: a non-ASCII letter counts
// as part of the 32-wide symbol class, not as a cased letter. The
// formula is simplistic and is kept bit-for-bit stable so reports stay
// comparable across versions.
func EstimateEntropy(password string) float64 {
	if password == "" {
		return 0.0
	}

	alphabet := 0
	hasLower, hasUpper, hasDigit, hasOther := false, false, false, false
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	if hasLower {
		alphabet += 26
	}
	if hasUpper {
		alphabet += 26
	}
	if hasDigit {
		alphabet += 10
	}
	if hasOther {
		alphabet += 32
	}
	if alphabet == 0 {
		return 0.0
	}

	bits := float64(utf8.RuneCountInString(password)) * math.Log2(float64(alphabet))

	lower := strings.ToLower(password)
	for _, weak := range weakSubstrings {
		if strings.Contains(lower, weak) {
			bits -= weakPenaltyBits
			break
		}
	}

	return math.Max(bits, 0.0)
}
