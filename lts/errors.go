package lts

import "errors"

// Sentinel errors for malformed or inconsistent FTS construction.
var (
	// ErrNoStates indicates a TransitionSystem was built with zero states.
	ErrNoStates = errors.New("lts: transition system has no states")

	// ErrNoInitialState indicates no state was marked initial.
	ErrNoInitialState = errors.New("lts: no initial state designated")

	// ErrInvalidState indicates a state index outside [0, NumStates).
	ErrInvalidState = errors.New("lts: state index out of range")

	// ErrInvalidLabel indicates a label id outside [0, Labels.Size()).
	ErrInvalidLabel = errors.New("lts: label id out of range")

	// ErrNegativeCost indicates a label was given a negative integer cost.
	ErrNegativeCost = errors.New("lts: label cost must be non-negative")

	// ErrDuplicateTransition indicates the same (src, label, tgt) triple was
	// added to a TransitionSystem twice.
	ErrDuplicateTransition = errors.New("lts: duplicate transition")
)
