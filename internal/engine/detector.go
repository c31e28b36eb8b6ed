package engine

import (
	"sort"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// Detector scores one candidate intent against normalized text and the
// reference sets. Implementations are pure: identical input always yields
// an identical verdict.
type Detector interface {
	Name() string
	Intent() entity.IntentKind
	Detect(text string, refs *entity.ReferenceSets) Verdict
}

// tokenSet builds a membership set over message tokens
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// sortedKeys returns set members in lexicographic order. Detectors iterate
// reference sets through this so that verdicts are deterministic regardless
// of map iteration order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matchEntry matches one reference entry against the message: multi-word
// entries as whole phrases, single words as token equality
func matchEntry(text string, tokens map[string]bool, entry string) bool {
	for i := 0; i < len(entry); i++ {
		if entry[i] == ' ' {
			return hasPhrase(text, entry)
		}
	}
	return tokens[entry]
}
