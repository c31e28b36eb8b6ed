package engine

import (
	"fmt"
	"strings"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// searchDetector catches availability phrasings ("do you have X") that are
// not framed as FAQ questions, plus a weak fallback for bare one-token
// messages that look like a product name. The fallback explicitly refuses
// greeting-vocabulary tokens: this detector runs last and its single-token
// rule is the most promiscuous in the pipeline, so the greeting exclusion
// cannot be left to ordering alone.
type searchDetector struct{}

const (
	searchWeightPattern     = 0.40
	searchWeightProduct     = 0.30
	searchWeightSingleToken = 0.50
	searchMaxProductHits    = 2

	searchSingleTokenMinLen = 3
	searchSingleTokenMaxLen = 20

	// searchThreshold is the minimum confidence for a match
	searchThreshold = 0.30
)

func (searchDetector) Name() string { return "search" }

func (searchDetector) Intent() entity.IntentKind { return entity.IntentProductSearch }

func (searchDetector) Detect(text string, refs *entity.ReferenceSets) Verdict {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Verdict{}
	}
	set := tokenSet(tokens)
	var ev Evidence

	if m := searchPatternRE.FindString(text); m != "" {
		ev.Add("availability:"+strings.TrimSpace(m), searchWeightPattern)
	}

	for i, name := range productMentions(text, tokens, set, refs) {
		if i >= searchMaxProductHits {
			break
		}
		ev.Add("product:"+name, searchWeightProduct)
	}

	if len(tokens) == 1 {
		tok := tokens[0]
		if n := len([]rune(tok)); n >= searchSingleTokenMinLen && n <= searchSingleTokenMaxLen &&
			!IsGreetingWord(tok) {
			ev.Add("single_token:"+tok, searchWeightSingleToken)
		}
	}

	score := ev.Capped()
	return Verdict{
		Matched: !ev.Empty() && score >= searchThreshold,
		Score:   score,
		Reason:  fmt.Sprintf("product search evidence: %.2f", score),
		Signals: ev.Signals(),
	}
}

// productMentions returns every catalog product present in the message,
// exactly or within typo distance, in lexicographic order
func productMentions(text string, tokens []string, set map[string]bool, refs *entity.ReferenceSets) []string {
	var found []string
	for _, name := range sortedKeys(refs.ProductNames) {
		if matchEntry(text, set, name) {
			found = append(found, name)
			continue
		}
		if strings.Contains(name, " ") {
			continue
		}
		for _, t := range tokens {
			if len(t) >= 3 && FuzzyEqual(t, name) {
				found = append(found, name)
				break
			}
		}
	}
	return found
}
