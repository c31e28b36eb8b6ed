package engine

import (
	"strings"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// greetingDetector matches messages that open with an entry from the closed
// greeting vocabulary, exactly or within typo distance. It only considers
// short messages so that a greeting folded into a longer request ("hello, I
// want two bottles") is left for the broader detectors further down the
// pipeline.
type greetingDetector struct{}

const greetingMaxTokens = 3

func (greetingDetector) Name() string { return "greeting" }

func (greetingDetector) Intent() entity.IntentKind { return entity.IntentGreeting }

func (greetingDetector) Detect(text string, _ *entity.ReferenceSets) Verdict {
	tokens := Tokenize(text)
	if len(tokens) == 0 || len(tokens) > greetingMaxTokens {
		return Verdict{}
	}

	var (
		matched  string
		fuzzy    bool
		consumed int
	)
	for _, greeting := range greetingVocab {
		words := strings.Fields(greeting)
		if len(words) > len(tokens) || len(words) < consumed {
			continue
		}
		anyFuzzy := false
		ok := true
		for i, w := range words {
			if tokens[i] == w {
				continue
			}
			if FuzzyEqual(tokens[i], w) {
				anyFuzzy = true
				continue
			}
			ok = false
			break
		}
		// prefer the longest match, and exact over fuzzy at equal length
		if ok && (len(words) > consumed || (len(words) == consumed && fuzzy && !anyFuzzy)) {
			matched = greeting
			fuzzy = anyFuzzy
			consumed = len(words)
		}
	}
	if matched == "" {
		return Verdict{}
	}

	greetingOnly := consumed == len(tokens)
	confidence := 0.80
	reason := "greeting with trailing text"
	switch {
	case greetingOnly && !fuzzy:
		confidence = 0.95
		reason = "greeting-only message"
	case greetingOnly && fuzzy:
		confidence = 0.85
		reason = "near-exact greeting-only message"
	}

	signal := "greeting:" + matched
	if fuzzy {
		signal = "greeting~" + matched
	}
	return Verdict{
		Matched: true,
		Score:   confidence,
		Reason:  reason,
		Signals: []string{signal},
	}
}
