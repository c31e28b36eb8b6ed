package engine

import "github.com/agnivade/levenshtein"

// FuzzyThreshold is the minimum similarity ratio for two tokens to count as
// a fuzzy match. Shared by every detector; no detector carries its own
// string-distance logic.
const FuzzyThreshold = 0.75

// Similarity returns a normalized edit-distance ratio in [0,1].
// It is symmetric and reflexive: identical strings score 1.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// FuzzyEqual reports whether two tokens are equal or similar enough to be
// treated as a typo of one another
func FuzzyEqual(a, b string) bool {
	return Similarity(a, b) >= FuzzyThreshold
}
