package engine

import (
	"regexp"
	"strings"
)

// Normalization keeps structurally meaningful punctuation (decimal points in
// prices, address commas, currency symbols, line breaks separating order
// items) and strips everything decorative. Repeated !/? runs collapse to
// their first character.
var (
	allowedRE  = regexp.MustCompile(`[^\p{L}\p{N}\s?!.,:;%'€$£¥₿-]+`)
	punctRunRE = regexp.MustCompile(`[!?]{2,}`)
	spaceRunRE = regexp.MustCompile(`[^\S\n]+`)
	lineRunRE  = regexp.MustCompile(` ?\n[\n ]*`)
)

// Normalize lowercases, trims, collapses whitespace and strips decorative
// punctuation. It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = allowedRE.ReplaceAllString(text, " ")
	text = punctRunRE.ReplaceAllStringFunc(text, func(run string) string {
		return run[:1]
	})
	text = spaceRunRE.ReplaceAllString(text, " ")
	text = lineRunRE.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// Tokenize splits normalized text into bare word tokens with surrounding
// punctuation removed. Empty tokens are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\n'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.Trim(f, "?!.,:;'"); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
