package searchtask

import "errors"

// ErrConditionalEffect is returned by Build when an operator carries a
// conditional effect: the atomic-projection builder only models
// unconditional preconditions/effects (original_source's own
// verify_no_conditional_effects guards the same restriction for several
// heuristics).
var ErrConditionalEffect = errors.New("searchtask: conditional effects are not supported")
