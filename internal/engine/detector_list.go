package engine

import (
	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// listDetector matches explicit catalog/price-list requests against a small
// fixed vocabulary, with a fuzzy fallback at reduced confidence. Keyword
// matching outside a polite phrasing is limited to short messages; a long
// sentence that merely mentions "prices" is not a list request.
type listDetector struct{}

const listMaxTokens = 5

func (listDetector) Name() string { return "list" }

func (listDetector) Intent() entity.IntentKind { return entity.IntentListRequest }

func (listDetector) Detect(text string, _ *entity.ReferenceSets) Verdict {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Verdict{}
	}

	// bare keyword message: "list", "prices", "catalog"
	if len(tokens) == 1 && inListVocab(tokens[0]) {
		return Verdict{
			Matched: true,
			Score:   1.0,
			Reason:  "direct list request",
			Signals: []string{"list:" + tokens[0]},
		}
	}

	// polite phrasings: "I'd like the list", "can you send me the catalog"
	if listPhraseRE.MatchString(text) || hasPhrase(text, "price list") {
		return Verdict{
			Matched: true,
			Score:   0.95,
			Reason:  "explicit list request phrase",
			Signals: []string{"list_phrase"},
		}
	}

	if len(tokens) > listMaxTokens {
		return Verdict{}
	}

	for _, t := range tokens {
		if inListVocab(t) {
			return Verdict{
				Matched: true,
				Score:   0.90,
				Reason:  "list keyword in short message",
				Signals: []string{"list:" + t},
			}
		}
	}

	// fuzzy recovery for typos like "lst" or "catalgo"
	for _, t := range tokens {
		if len(t) < 3 {
			continue
		}
		for _, kw := range listVocab {
			if FuzzyEqual(t, kw) {
				return Verdict{
					Matched: true,
					Score:   0.80,
					Reason:  "fuzzy list keyword",
					Signals: []string{"list~" + kw},
				}
			}
		}
	}

	return Verdict{}
}

func inListVocab(token string) bool {
	for _, kw := range listVocab {
		if token == kw {
			return true
		}
	}
	return false
}
