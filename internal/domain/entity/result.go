package entity

// ClassificationResult is the outcome of classifying one message.
// It is produced once per call and never persisted by the engine.
type ClassificationResult struct {
	Intent         IntentKind `json:"intent"`
	Confidence     float64    `json:"confidence"`
	Reason         string     `json:"reason"`
	MatchedSignals []string   `json:"matched_signals"`
}

// NewClassificationResult creates a result with the confidence clamped to [0,1]
func NewClassificationResult(intent IntentKind, confidence float64, reason string, signals []string) ClassificationResult {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return ClassificationResult{
		Intent:         intent,
		Confidence:     confidence,
		Reason:         reason,
		MatchedSignals: signals,
	}
}

// NewFallbackResult creates the result the resolver emits when no detector matched
func NewFallbackResult(confidence float64, reason string) ClassificationResult {
	return NewClassificationResult(IntentFallback, confidence, reason, nil)
}

// IsFallback returns true if no detector claimed the message
func (r ClassificationResult) IsFallback() bool {
	return r.Intent == IntentFallback
}
