package engine

import (
	"regexp"
	"strings"
)

// Built-in closed vocabularies. These cover the structural language of the
// conversation (greetings, question words, quantities); the merchant-owned
// vocabulary (products, cities, FAQ topics, payment methods) comes from the
// injected reference sets instead.

// greetingVocab is the closed greeting vocabulary. Multi-word entries are
// matched as phrases from the start of the message.
var greetingVocab = []string{
	"hello", "hi", "hey", "hiya", "howdy", "greetings", "yo", "ciao",
	"good morning", "good afternoon", "good evening", "good day",
}

// greetingTokens holds the single-token subset, used by the product-search
// detector to keep its single-token fallback from stealing greetings.
var greetingTokens = func() map[string]bool {
	set := make(map[string]bool)
	for _, g := range greetingVocab {
		if !strings.Contains(g, " ") {
			set[g] = true
		}
	}
	return set
}()

// listVocab is the catalog/price-list request vocabulary
var listVocab = []string{"list", "catalog", "catalogue", "pricelist", "prices"}

// listPhraseRE matches polite catalog-request phrasings
var listPhraseRE = regexp.MustCompile(
	`\b(i'?d like|i would like|i want|send( me)?|show( me)?|give( me)?|can i (get|have|see))\s+(the\s+|your\s+|a\s+)?(price\s?list|product list|list|catalog(ue)?|prices)\b`)

// interrogatives are the question words that signal an informational request
var interrogatives = map[string]bool{
	"when": true, "where": true, "how": true, "why": true,
	"what": true, "who": true, "which": true,
}

// infoPhrases are explicit requests for information without a question word
var infoPhrases = []string{
	"i'd like to know", "i would like to know", "i want to know",
	"i need to know", "can you tell me", "could you tell me",
	"tell me about", "do you know",
}

// orderQuestionRE matches interrogatives about the ordering process itself.
// Such messages must never score as an actual order.
var orderQuestionRE = regexp.MustCompile(
	`\bhow\s+(do|can|would|should)\s+i\s+(place|make|submit|send)?\s*(an?\s+)?order\b|` +
		`\bhow\s+(does|do)\s+(the\s+)?order(ing)?\s+(process\s+)?work\b|` +
		`\bhow\s+to\s+(place\s+an?\s+)?order\b|` +
		`\bwhat('?s| is)\s+the\s+order(ing)?\s+(process|procedure)\b`)

// Order-signal patterns
var (
	currencyRE = regexp.MustCompile(
		`[€$£¥₿]|\b\d+([.,]\d+)?\s?(euros?|eur|usd|dollars?|bucks|gbp|pounds?)\b`)

	quantityDigitRE = regexp.MustCompile(
		`\b\d+\s*x\s*\p{L}|\p{L}\s*x\s*\d+|\b\d+\s+\p{L}{2,}`)
	quantityUnitRE = regexp.MustCompile(
		`\b\d+\s*(pcs|pieces?|bottles?|boxes?|packs?|units?|bags?|jars?|cans?|kg|g|grams?|l|liters?|litres?)\b`)

	addressRE = regexp.MustCompile(
		`\b\p{L}+\s+(street|avenue|road|boulevard|lane|drive|square|alley)\b|` +
			`\b(street|avenue|road|via|piazza)\s+\p{L}+|\b(ship|deliver|send)\s+(it\s+)?to\b`)
	postalCodeRE = regexp.MustCompile(`\b\d{5}(-\d{4})?\b`)

	paymentIntentRE = regexp.MustCompile(
		`\b(i'?ll pay|i will pay|i pay|paying|i'?d pay|payment)\s+(by|with|via|in)\b`)
)

// numberWords are spelled-out quantities that count as a quantity expression
var numberWords = map[string]bool{
	"one": true, "two": true, "three": true, "four": true, "five": true,
	"six": true, "seven": true, "eight": true, "nine": true, "ten": true,
	"eleven": true, "twelve": true, "dozen": true, "couple": true,
}

// quantityUnits pair with a number word ("two bottles")
var quantityUnits = map[string]bool{
	"pcs": true, "piece": true, "pieces": true, "bottle": true, "bottles": true,
	"box": true, "boxes": true, "pack": true, "packs": true, "unit": true,
	"units": true, "bag": true, "bags": true, "jar": true, "jars": true,
	"can": true, "cans": true, "kilos": true, "kilo": true, "grams": true,
	"liters": true, "litres": true,
}

// searchPatternRE matches availability phrasings not framed as FAQ questions
var searchPatternRE = regexp.MustCompile(
	`\bdo you (have|sell|stock|carry)\b|\bhave you got\b|\bare you selling\b|` +
		`\b(is|are)\s+.+\s+(available|in stock)\b|\b(i'?m|i am)?\s*(looking|searching)\s+for\b`)

// phrasePunctRE strips punctuation for whole-phrase containment checks
var phrasePunctRE = regexp.MustCompile(`[?!.,:;\n]+`)

// hasPhrase reports whether the normalized text contains the given phrase
// on word boundaries
func hasPhrase(text, phrase string) bool {
	clean := strings.Join(strings.Fields(phrasePunctRE.ReplaceAllString(text, " ")), " ")
	return strings.Contains(" "+clean+" ", " "+phrase+" ")
}

// IsGreetingWord reports whether a single token belongs to the greeting
// vocabulary
func IsGreetingWord(token string) bool {
	return greetingTokens[token]
}
