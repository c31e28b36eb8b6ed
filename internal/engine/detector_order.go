package engine

import (
	"fmt"
	"strings"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// orderDetector scores purchase messages by summing fixed points per
// matched signal category. Each category contributes once no matter how
// often it occurs. A message asking about the ordering process is excluded
// before any scoring.
type orderDetector struct{}

// Points per signal category
const (
	orderPointsPrice         = 3.0
	orderPointsQuantity      = 2.0
	orderPointsSeparators    = 2.0
	orderPointsSingleComma   = 1.0
	orderPointsAddress       = 1.0
	orderPointsCity          = 1.0
	orderPointsPayment       = 2.0
	orderPointsPaymentIntent = 1.0
	orderPointsProduct       = 2.0

	// orderPointsThreshold is the minimum total for a match; confidence is
	// points/10 capped at 1.0, so converging signals raise trust while a
	// lone sufficient signal stays low-to-moderate.
	orderPointsThreshold = 3.0
	orderConfidenceScale = 10.0
)

func (orderDetector) Name() string { return "order" }

func (orderDetector) Intent() entity.IntentKind { return entity.IntentPlaceOrder }

func (orderDetector) Detect(text string, refs *entity.ReferenceSets) Verdict {
	if orderQuestionRE.MatchString(text) {
		return Verdict{Reason: "question about the ordering process"}
	}

	tokens := Tokenize(text)
	set := tokenSet(tokens)
	var ev Evidence

	if m := currencyRE.FindString(text); m != "" {
		ev.Add("price:"+strings.TrimSpace(m), orderPointsPrice)
	}
	if sig, ok := quantitySignal(text, tokens); ok {
		ev.Add(sig, orderPointsQuantity)
	}
	if pts, ok := separatorSignal(text); ok {
		ev.Add("separators", pts)
	}
	if addressRE.MatchString(text) || postalCodeRE.MatchString(text) {
		ev.Add("address", orderPointsAddress)
	}
	if city, ok := firstEntryMatch(text, set, refs.CityNames); ok {
		ev.Add("city:"+city, orderPointsCity)
	}
	if kw, ok := firstEntryMatch(text, set, refs.PaymentKeywords); ok {
		ev.Add("payment:"+kw, orderPointsPayment)
		// first-person payment phrasing is a commitment, not a question
		if paymentIntentRE.MatchString(text) {
			ev.Add("payment_intent", orderPointsPaymentIntent)
		}
	}
	if sig, ok := productSignal(text, tokens, set, refs); ok {
		ev.Add(sig, orderPointsProduct)
	}

	points := ev.Score()
	return Verdict{
		Matched: points >= orderPointsThreshold,
		Score:   clamp01(points / orderConfidenceScale),
		Reason:  fmt.Sprintf("order signals: %.0f points", points),
		Signals: ev.Signals(),
	}
}

// quantitySignal matches digit quantities ("2x oil", "2 bottles") and
// spelled-out ones ("two bottles")
func quantitySignal(text string, tokens []string) (string, bool) {
	if m := quantityUnitRE.FindString(text); m != "" {
		return "quantity:" + m, true
	}
	// a bare amount ("20 euros") is a price, and a house number ("5 oak
	// street") is part of the address, neither is a quantity
	addrSpans := addressRE.FindAllStringIndex(text, -1)
	for _, loc := range quantityDigitRE.FindAllStringIndex(text, -1) {
		m := text[loc[0]:loc[1]]
		if currencyRE.MatchString(m) || overlapsAny(loc, addrSpans) {
			continue
		}
		return "quantity:" + m, true
	}
	for i := 0; i+1 < len(tokens); i++ {
		if numberWords[tokens[i]] && quantityUnits[tokens[i+1]] {
			return "quantity:" + tokens[i] + " " + tokens[i+1], true
		}
	}
	return "", false
}

func overlapsAny(loc []int, spans [][]int) bool {
	for _, s := range spans {
		if loc[0] < s[1] && s[0] < loc[1] {
			return true
		}
	}
	return false
}

// separatorSignal scores multi-item structure: several commas, a semicolon
// or multiple lines score full points, a single comma scores one
func separatorSignal(text string) (float64, bool) {
	commas := strings.Count(text, ",")
	semis := strings.Count(text, ";")
	lines := strings.Count(text, "\n")
	switch {
	case commas >= 2 || semis >= 1 || lines >= 2:
		return orderPointsSeparators, true
	case commas == 1:
		return orderPointsSingleComma, true
	}
	return 0, false
}

// firstEntryMatch finds the lexicographically first reference entry present
// in the message, keeping verdicts deterministic across map iteration order
func firstEntryMatch(text string, tokens map[string]bool, set map[string]bool) (string, bool) {
	for _, entry := range sortedKeys(set) {
		if matchEntry(text, tokens, entry) {
			return entry, true
		}
	}
	return "", false
}

// productSignal matches a catalog product exactly, or by token similarity
// for single-word product names
func productSignal(text string, tokens []string, set map[string]bool, refs *entity.ReferenceSets) (string, bool) {
	if name, ok := firstEntryMatch(text, set, refs.ProductNames); ok {
		return "product:" + name, true
	}
	if name, ok := fuzzyProductMatch(tokens, refs); ok {
		return "product~" + name, true
	}
	return "", false
}

// fuzzyProductMatch compares each message token against single-word product
// names and returns the best-scoring one at or above the fuzzy threshold
func fuzzyProductMatch(tokens []string, refs *entity.ReferenceSets) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, name := range sortedKeys(refs.ProductNames) {
		if strings.Contains(name, " ") {
			continue
		}
		for _, t := range tokens {
			if len(t) < 3 {
				continue
			}
			if s := Similarity(t, name); s >= FuzzyThreshold && s > bestScore {
				best = name
				bestScore = s
			}
		}
	}
	return best, best != ""
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
