// Package engine implements the intent classification core: a text
// normalizer, a shared fuzzy-similarity primitive and five pure intent
// detectors evaluated by a priority resolver. The engine performs no I/O,
// keeps no per-call state and is safe for concurrent use; the reference
// vocabulary is swapped atomically on reload.
package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// Detector thresholds applied by the resolver. Greeting and list are
// narrow, high-precision rules and run first; order precedes faq so rich
// multi-signal purchase messages are not stolen by an incidental question
// word; faq precedes search so explicit questions resolve as questions;
// search runs last because its single-token fallback is the most permissive
// rule in the chain.
const (
	greetingThreshold = 0.80
	listThreshold     = 0.80
	orderThreshold    = orderPointsThreshold / orderConfidenceScale

	// fallbackConfidence is reported when no detector matched a non-empty
	// message; empty input reports zero
	fallbackConfidence = 0.10
)

// rule pairs a detector with the confidence its verdict must reach.
// The ordered rule list is the entire priority policy: re-tuning the
// pipeline is an edit to this table, not to control flow.
type rule struct {
	detector  Detector
	threshold float64
}

// Engine is the classification engine. One instance serves any number of
// concurrent callers without locking.
type Engine struct {
	refs  atomic.Pointer[entity.ReferenceSets]
	rules []rule
}

// New creates an engine over the given reference sets. Constructing an
// engine without usable reference data fails fast.
func New(refs *entity.ReferenceSets) (*Engine, error) {
	if err := refs.Validate(); err != nil {
		return nil, fmt.Errorf("classification engine: %w", err)
	}
	e := &Engine{
		rules: []rule{
			{greetingDetector{}, greetingThreshold},
			{listDetector{}, listThreshold},
			{orderDetector{}, orderThreshold},
			{faqDetector{}, faqThreshold},
			{searchDetector{}, searchThreshold},
		},
	}
	e.refs.Store(refs)
	return e, nil
}

// Classify classifies one message. It never fails for content reasons: any
// input yields a result, degrading to the fallback intent.
func (e *Engine) Classify(text string) entity.ClassificationResult {
	normalized := Normalize(text)
	if normalized == "" {
		return entity.NewFallbackResult(0, "empty message")
	}

	refs := e.refs.Load()
	for _, r := range e.rules {
		verdict := r.detector.Detect(normalized, refs)
		if verdict.Matched && verdict.Score >= r.threshold {
			return entity.NewClassificationResult(
				r.detector.Intent(), verdict.Score, verdict.Reason, verdict.Signals)
		}
	}

	return entity.NewFallbackResult(fallbackConfidence, "no intent recognized")
}

// Reload atomically swaps the reference vocabulary. Invalid sets are
// rejected and the previous vocabulary stays in place; in-flight calls
// observe either the fully-old or fully-new tables, never a mix.
func (e *Engine) Reload(refs *entity.ReferenceSets) error {
	if err := refs.Validate(); err != nil {
		return fmt.Errorf("reload reference sets: %w", err)
	}
	e.refs.Store(refs)
	return nil
}

// ReferenceCounts reports the size of the currently loaded vocabulary
func (e *Engine) ReferenceCounts() map[string]int {
	return e.refs.Load().Counts()
}
