package components

// SequenceStatus is the result of advancing a long-running step.
type SequenceStatus int

const (
	Continue SequenceStatus = iota
	Done
)

// Sequence is a resumable step advanced once per tick. Its resume state is
// plain data held by the implementation.
type Sequence interface {
	Tick(dt float64) SequenceStatus
}
