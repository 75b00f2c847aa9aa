package check

import (
	"github.com/katalvlaran/ftsdom/builder"
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/localdom"
	"github.com/katalvlaran/ftsdom/lts"
)

// DominanceCheck wraps a built dominance Artifact, answering search-time
// pruning queries against it. Initialize must run before any other method.
type DominanceCheck[T cost.Value[T]] struct {
	locals []*localdom.LocalDominanceFunction[T]
	task   lts.FTSTask

	initialState lts.State

	// Scratch reused across calls (original_source's mutable members).
	relevantSimulations map[int]bool
	parent              lts.State
	succ                lts.State
	valuesInitialAgainstParent []T

	initialized bool
}

// New constructs an uninitialized DominanceCheck.
func New[T cost.Value[T]]() *DominanceCheck[T] {
	return &DominanceCheck[T]{relevantSimulations: make(map[int]bool)}
}

// Initialize binds a built Artifact to task and records task's initial
// world state for later strict-dominance-against-initial comparisons.
func (c *DominanceCheck[T]) Initialize(artifact *builder.Artifact[T], task lts.FTSTask) {
	c.locals = artifact.Locals
	c.task = task

	n := task.Size()
	c.initialState = make(lts.State, n)
	for i := 0; i < n; i++ {
		c.initialState[i] = task.TS(i).Initial()
	}
	c.parent = make(lts.State, n)
	c.succ = make(lts.State, n)
	c.valuesInitialAgainstParent = make([]T, n)
	c.initialized = true
}

// size returns the number of LTSs, i.e. the width of a world state.
func (c *DominanceCheck[T]) size() int { return len(c.locals) }

// requireInitialized panics with ErrNotInitialized if Initialize was never
// called; a programmer error, not a runtime condition callers can recover
// from mid-search.
func (c *DominanceCheck[T]) requireInitialized() {
	if !c.initialized {
		panic(ErrNotInitialized)
	}
}

// dominatesAll sums q_simulates(a[i], b[i]) across every LTS, short-circuiting
// to false the moment any LTS reports Bottom (a cannot substitute for b
// there at all), and reports whether the total covers actionCost. Mirrors
// DominanceFunction::dominates_parent.
func (c *DominanceCheck[T]) dominatesAll(a, b lts.State, actionCost int) bool {
	var z T
	total := z.Zero()
	for i := 0; i < c.size(); i++ {
		val := c.locals[i].QSimulates(a[i], b[i])
		if val.IsBottom() {
			return false
		}
		total = total.Add(val)
	}
	return total.Cmp(costFromInt[T](actionCost)) >= 0
}

// costFromInt builds the flavor-T representation of a plain non-negative
// action cost (lts.Labels.Cost), a narrow type-switch bridge in the same
// spirit as cost.FromEpsilon.
func costFromInt[T cost.Value[T]](v int) T {
	var z T
	switch any(z).(type) {
	case cost.Int:
		return any(cost.Int(v)).(T)
	case cost.Epsilon:
		return any(cost.Epsilon{Base: v}).(T)
	default:
		panic("check: costFromInt does not support this flavor")
	}
}
