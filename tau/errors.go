package tau

import "errors"

// Sentinel errors for tau-label and tau-distance computation.
var (
	// ErrNoTransitionSystem indicates a nil TransitionSystem was passed in.
	ErrNoTransitionSystem = errors.New("tau: transition system is nil")

	// ErrUnknownLabel indicates a query referenced a label the Labels
	// alphabet does not contain.
	ErrUnknownLabel = errors.New("tau: unknown label id")

	// ErrStateOutOfRange indicates a distance query used a state index
	// outside the transition system's bounds.
	ErrStateOutOfRange = errors.New("tau: state index out of range")
)
