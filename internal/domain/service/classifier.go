package service

import "github.com/gcaponi/S4all-BOT/internal/domain/entity"

// IntentClassifier defines the interface for the classification engine.
// Classify takes no context because the engine is pure CPU work: it never
// blocks, performs I/O, or suspends.
type IntentClassifier interface {
	// Classify classifies a single message and always returns a result,
	// degrading to a fallback intent for unrecognizable input
	Classify(text string) entity.ClassificationResult

	// Reload atomically swaps the reference vocabulary. In-flight
	// classifications observe either the old or the new sets, never a mix.
	Reload(refs *entity.ReferenceSets) error

	// ReferenceCounts reports the size of the currently loaded vocabulary
	ReferenceCounts() map[string]int
}
