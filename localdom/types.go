package localdom

import (
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
	"github.com/katalvlaran/ftsdom/tau"
)

// LabelRelation is the subset of labeldom.LabelDominanceFunction[T]'s
// public contract the relaxation formula in Update needs. Accepting this
// interface instead of the concrete type avoids a direct import-cycle
// between localdom and labeldom, which depend on each other's outputs
// in the coupled fixpoint.
type LabelRelation[T cost.Value[T]] interface {
	// QDominates returns L_i(g1,g2): how much g1 dominates g2 in LTS tsIndex.
	QDominates(tsIndex int, g1, g2 lts.LabelGroupID) T
	// SimulatesIrrelevant returns how much the irrelevant (self-loop)
	// behavior in tsIndex simulates group g.
	SimulatesIrrelevant(tsIndex int, g lts.LabelGroupID) T
	// QDominatedByNoop returns how much doing nothing dominates group g in
	// tsIndex — the "is g essentially a noop" value.
	QDominatedByNoop(tsIndex int, g lts.LabelGroupID) T
}

// LocalDominanceFunction is the per-LTS q-simulation table R_i, generic
// over the cost flavor T the task was built with.
type LocalDominanceFunction[T cost.Value[T]] struct {
	tsIndex int
	ts      *lts.TransitionSystem
	n       int
	r       [][]T

	tauDist *tau.Distances

	cancelled     bool
	truncateValue int
}

// New allocates a LocalDominanceFunction over ts, not yet initialized.
// truncateValue is truncate_value: Update collapses any cell that falls
// below -truncateValue to Bottom.
func New[T cost.Value[T]](tsIndex int, ts *lts.TransitionSystem, truncateValue int) *LocalDominanceFunction[T] {
	n := ts.NumStates()
	r := make([][]T, n)
	for i := range r {
		r[i] = make([]T, n)
	}
	return &LocalDominanceFunction[T]{tsIndex: tsIndex, ts: ts, n: n, r: r, truncateValue: truncateValue}
}

// SetTauDistances installs the current tau-distances snapshot used by the
// relaxation's tau-coasting term. Called by builder whenever tau.Precompute
// advances the LTS's version.
func (f *LocalDominanceFunction[T]) SetTauDistances(d *tau.Distances) { f.tauDist = d }

// InitGoalRespecting resets R_i to the goal-respecting base relation: s can
// only simulate t if s is a goal state whenever t is. For example, in a
// two-state LTS with s1 goal and s0 not, R(s1,s0)=0 (s1 can always stand in
// for the non-goal s0) but R(s0,s1)=-inf (s0 is not a valid substitute for
// the goal state s1). R_i(s,s) = 0 always; otherwise R_i(s,t) = Bottom exactly when t is a
// goal state and s is not, and 0 in every other case.
func (f *LocalDominanceFunction[T]) InitGoalRespecting() {
	var zero T
	f.cancelled = false
	for s := 0; s < f.n; s++ {
		for t := 0; t < f.n; t++ {
			switch {
			case s == t:
				f.r[s][t] = zero.Zero()
			case f.ts.IsGoal(lts.StateID(t)) && !f.ts.IsGoal(lts.StateID(s)):
				f.r[s][t] = zero.Bottom()
			default:
				f.r[s][t] = zero.Zero()
			}
		}
	}
}

// CancelSimulationComputation freezes R_i at its current (possibly
// trivial, goal-respecting-only) value, used when the LTS is too large to
// refine within budget: downstream checks still answer soundly, just with
// no pruning power on this LTS.
func (f *LocalDominanceFunction[T]) CancelSimulationComputation() { f.cancelled = true }

// Cancelled reports whether this relation was frozen early.
func (f *LocalDominanceFunction[T]) Cancelled() bool { return f.cancelled }

// TSIndex returns the index of the LTS this relation belongs to.
func (f *LocalDominanceFunction[T]) TSIndex() int { return f.tsIndex }

// NumStates returns the LTS's state count.
func (f *LocalDominanceFunction[T]) NumStates() int { return f.n }

// QSimulates returns R_i(s,t), the raw q-simulation value.
func (f *LocalDominanceFunction[T]) QSimulates(s, t lts.StateID) T { return f.r[s][t] }

// Simulates reports whether s simulates t at all: q >= 0.
func (f *LocalDominanceFunction[T]) Simulates(s, t lts.StateID) bool {
	var zero T
	return cost.GE(f.r[s][t], zero.Zero())
}

// MaySimulate reports whether s may simulate t: q > -inf.
func (f *LocalDominanceFunction[T]) MaySimulate(s, t lts.StateID) bool {
	return !f.r[s][t].IsBottom()
}

// StrictlySimulates reports whether s simulates t but not vice versa.
func (f *LocalDominanceFunction[T]) StrictlySimulates(s, t lts.StateID) bool {
	return f.Simulates(s, t) && !f.Simulates(t, s)
}

// Similar reports whether s and t simulate each other (bisimilar under the
// current relation).
func (f *LocalDominanceFunction[T]) Similar(s, t lts.StateID) bool {
	return f.Simulates(s, t) && f.Simulates(t, s)
}
