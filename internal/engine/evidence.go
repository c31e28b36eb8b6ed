package engine

// Verdict is a detector's judgement of one message. It is internal to the
// engine and consumed only by the resolver; Score is always in [0,1].
type Verdict struct {
	Matched bool
	Score   float64
	Reason  string
	Signals []string
}

// Evidence accumulates independent weighted signals for one detector pass.
// Each category contributes once; the sum is compared against the
// detector's threshold by the resolver. Shared by the Order and FAQ
// detectors instead of per-detector ad hoc counters.
type Evidence struct {
	score   float64
	signals []string
}

// Add records one matched signal category with its weight
func (e *Evidence) Add(signal string, weight float64) {
	e.score += weight
	e.signals = append(e.signals, signal)
}

// Score returns the raw accumulated weight
func (e *Evidence) Score() float64 {
	return e.score
}

// Capped returns the accumulated weight capped at 1.0
func (e *Evidence) Capped() float64 {
	if e.score > 1.0 {
		return 1.0
	}
	return e.score
}

// Signals returns the matched signal labels in insertion order
func (e *Evidence) Signals() []string {
	return e.signals
}

// Empty reports whether no signal matched
func (e *Evidence) Empty() bool {
	return len(e.signals) == 0
}
