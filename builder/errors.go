package builder

import "errors"

// ErrInvariantViolation wraps a detected poison-value or out-of-lattice
// observation: an assertion that would abort the process in the original
// C++ source, translated to Go's panic/recover idiom at the Build boundary.
var ErrInvariantViolation = errors.New("builder: dominance invariant violated")

// ErrEmptyTask indicates Build was called with an FTSTask of size 0.
var ErrEmptyTask = errors.New("builder: task has no transition systems")
