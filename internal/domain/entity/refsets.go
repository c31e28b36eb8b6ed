package entity

import (
	"errors"
	"strings"
)

// Errors returned when constructing an engine from bad reference data
var (
	ErrNoReferenceSets      = errors.New("reference sets not initialized")
	ErrNilReferenceSet      = errors.New("reference set map is nil")
	ErrEmptyReferenceVocab  = errors.New("reference vocabulary is empty")
	ErrEmptyFAQTopicKeyword = errors.New("faq topic has no keywords")
)

// ReferenceSets holds the externally-curated lookup vocabulary the engine
// scores against. It is loaded once at construction (or swapped atomically
// on reload) and never mutated by the engine.
type ReferenceSets struct {
	ProductNames     map[string]bool
	CityNames        map[string]bool
	FAQTopicKeywords map[string][]string
	PaymentKeywords  map[string]bool
}

// NewReferenceSets builds a ReferenceSets from raw vocabulary lists.
// Entries are lowercased and trimmed; blanks are dropped.
func NewReferenceSets(products, cities []string, faqTopics map[string][]string, payments []string) *ReferenceSets {
	refs := &ReferenceSets{
		ProductNames:     toSet(products),
		CityNames:        toSet(cities),
		FAQTopicKeywords: make(map[string][]string, len(faqTopics)),
		PaymentKeywords:  toSet(payments),
	}
	for topic, keywords := range faqTopics {
		topic = normalizeEntry(topic)
		if topic == "" {
			continue
		}
		cleaned := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			if kw = normalizeEntry(kw); kw != "" {
				cleaned = append(cleaned, kw)
			}
		}
		refs.FAQTopicKeywords[topic] = cleaned
	}
	return refs
}

// Validate reports whether the sets are usable by the engine.
// An engine constructed without initialized sets must fail fast rather
// than silently under-score forever.
func (r *ReferenceSets) Validate() error {
	if r == nil {
		return ErrNoReferenceSets
	}
	if r.ProductNames == nil || r.CityNames == nil || r.FAQTopicKeywords == nil || r.PaymentKeywords == nil {
		return ErrNilReferenceSet
	}
	if len(r.ProductNames) == 0 && len(r.CityNames) == 0 &&
		len(r.FAQTopicKeywords) == 0 && len(r.PaymentKeywords) == 0 {
		return ErrEmptyReferenceVocab
	}
	for topic, keywords := range r.FAQTopicKeywords {
		// a topic with zero keywords can never match and indicates a bad load
		if len(keywords) == 0 {
			return errors.Join(ErrEmptyFAQTopicKeyword, errors.New("topic: "+topic))
		}
	}
	return nil
}

// Counts returns the number of entries per set, for inspection endpoints
func (r *ReferenceSets) Counts() map[string]int {
	keywords := 0
	for _, kws := range r.FAQTopicKeywords {
		keywords += len(kws)
	}
	return map[string]int{
		"products":         len(r.ProductNames),
		"cities":           len(r.CityNames),
		"faq_topics":       len(r.FAQTopicKeywords),
		"faq_keywords":     keywords,
		"payment_keywords": len(r.PaymentKeywords),
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = normalizeEntry(v); v != "" {
			set[v] = true
		}
	}
	return set
}

func normalizeEntry(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
