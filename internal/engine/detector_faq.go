package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// faqDetector matches informational questions by summing weighted evidence:
// a question word, an explicit information-request phrase, a keyword from an
// FAQ topic family and a question mark. Interrogative framing deliberately
// dominates: a price question that also names a product is an FAQ, not a
// product search.
type faqDetector struct{}

const (
	faqWeightInterrogative = 0.40
	faqWeightInfoPhrase    = 0.30
	faqWeightTopic         = 0.45
	faqWeightQuestionMark  = 0.25

	// faqThreshold is the minimum evidence sum for a match
	faqThreshold = 0.65
)

func (faqDetector) Name() string { return "faq" }

func (faqDetector) Intent() entity.IntentKind { return entity.IntentFaqQuestion }

func (faqDetector) Detect(text string, refs *entity.ReferenceSets) Verdict {
	tokens := Tokenize(text)
	set := tokenSet(tokens)
	var ev Evidence

	for _, t := range tokens {
		if interrogatives[t] {
			ev.Add("interrogative:"+t, faqWeightInterrogative)
			break
		}
	}

	for _, phrase := range infoPhrases {
		if hasPhrase(text, phrase) {
			ev.Add("info_request:"+phrase, faqWeightInfoPhrase)
			break
		}
	}

	if topic, ok := topicMatch(text, set, refs); ok {
		ev.Add("topic:"+topic, faqWeightTopic)
	}

	if strings.Contains(text, "?") {
		ev.Add("question_mark", faqWeightQuestionMark)
	}

	score := ev.Capped()
	return Verdict{
		Matched: !ev.Empty() && score >= faqThreshold,
		Score:   score,
		Reason:  fmt.Sprintf("faq evidence: %.2f", score),
		Signals: ev.Signals(),
	}
}

// topicMatch finds the first FAQ topic family with a keyword present in the
// message. Topics are visited in sorted order for determinism.
func topicMatch(text string, tokens map[string]bool, refs *entity.ReferenceSets) (string, bool) {
	topics := make([]string, 0, len(refs.FAQTopicKeywords))
	for topic := range refs.FAQTopicKeywords {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	for _, topic := range topics {
		for _, kw := range refs.FAQTopicKeywords[topic] {
			if matchEntry(text, tokens, kw) {
				return topic, true
			}
		}
	}
	return "", false
}
