package pruning

import (
	"github.com/katalvlaran/ftsdom/builder"
	"github.com/katalvlaran/ftsdom/check"
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

// Adapter is the PruningMethod glue: it builds a dominance Artifact once
// via package builder and answers per-state pruning decisions via package
// check, generic over the cost flavor T the task's labels are costed in —
// callers pick cost.Int when every label has strictly positive cost,
// cost.Epsilon when some label costs 0.
type Adapter[T cost.Value[T]] struct {
	cfg config

	check       *check.DominanceCheck[T]
	initialized bool
}

// New constructs an Adapter with opts applied over sensible defaults (no
// pruning enabled by default, matching the original's every toggle
// defaulting to false).
func New[T cost.Value[T]](opts ...Option) *Adapter[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Adapter[T]{cfg: cfg, check: check.New[T]()}
}

// Initialize builds the dominance Artifact for task, if any pruning toggle
// is enabled, and binds it to the adapter's DominanceCheck. Calling
// Initialize more than once is a programmer error (ErrAlreadyInitialized),
// matching the original's guarded one-shot initialize().
func (a *Adapter[T]) Initialize(task lts.FTSTask) error {
	if a.initialized {
		return ErrAlreadyInitialized
	}
	if a.cfg.applyPruning() {
		b := builder.New[T](a.cfg.builderOpts...)
		artifact, err := b.Build(task)
		if err != nil {
			return err
		}
		a.check.Initialize(artifact, task)
	}
	a.initialized = true
	return nil
}

// PruneOperators narrows ops in place, the way the original's
// prune_operators mutates its std::vector<OperatorID> argument: first
// action-selection pruning (if enabled and more than one operator remains),
// then parent/initial-state dominance pruning (if either is enabled).
func (a *Adapter[T]) PruneOperators(state lts.State, ops *[]lts.OperatorID) error {
	if !a.initialized {
		return ErrNotInitialized
	}
	if !a.cfg.applyPruning() {
		return nil
	}

	appliedActionSelection := false
	if a.cfg.pruneSuccessors && len(*ops) > 1 {
		appliedActionSelection = true
		if a.check.ActionSelectionPruning(state, ops) {
			return nil
		}
	}

	if a.cfg.pruneDominatedByParent || a.cfg.pruneDominatedByInitialState {
		a.check.PruneDominatedByParentOrInitialState(
			state,
			ops,
			appliedActionSelection,
			a.cfg.pruneDominatedByParent,
			a.cfg.pruneDominatedByInitialState,
		)
	}
	return nil
}
