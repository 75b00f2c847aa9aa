package labeldom

import (
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

// LabelDominanceFunction is the cross-LTS label dominance relation L,
// generic over the cost flavor T the task was built with.
type LabelDominanceFunction[T cost.Value[T]] struct {
	task lts.FTSTask

	l                 []map[groupPair]T
	dominatedByNoop   []map[lts.LabelGroupID]T // noop dominates g: doing nothing subsumes g's effect
	dominatesNoop     []map[lts.LabelGroupID]T // g dominates noop: g is at least as good as doing nothing
	simulatesIrrel    []map[lts.LabelGroupID]T // clause-2 alias of dominatedByNoop, kept as a distinct name/query

	useSummary bool
	summary    map[labelPair]Summary
}

// New allocates an (uninitialized) label dominance relation for task.
// useSummary gates whether the may_dominate summary matrix is maintained;
// the caller (package builder) decides this from
// `labels.Size() <= numLabelsToUseDominatesIn`.
func New[T cost.Value[T]](task lts.FTSTask, useSummary bool) *LabelDominanceFunction[T] {
	n := task.Size()
	f := &LabelDominanceFunction[T]{
		task:            task,
		l:               make([]map[groupPair]T, n),
		dominatedByNoop: make([]map[lts.LabelGroupID]T, n),
		dominatesNoop:   make([]map[lts.LabelGroupID]T, n),
		simulatesIrrel:  make([]map[lts.LabelGroupID]T, n),
		useSummary:      useSummary,
	}
	if useSummary {
		f.summary = make(map[labelPair]Summary)
	}
	for i := 0; i < n; i++ {
		f.l[i] = make(map[groupPair]T)
		f.dominatedByNoop[i] = make(map[lts.LabelGroupID]T)
		f.dominatesNoop[i] = make(map[lts.LabelGroupID]T)
		f.simulatesIrrel[i] = make(map[lts.LabelGroupID]T)
	}
	return f
}

// QDominates returns L_i(g1,g2).
func (f *LabelDominanceFunction[T]) QDominates(tsIndex int, g1, g2 lts.LabelGroupID) T {
	return f.l[tsIndex][groupPair{g1, g2}]
}

// MayDominate reports whether g1 dominates g2 in tsIndex: L_i(g1,g2) >= 0.
func (f *LabelDominanceFunction[T]) MayDominate(tsIndex int, g1, g2 lts.LabelGroupID) bool {
	var zero T
	return cost.GE(f.QDominates(tsIndex, g1, g2), zero.Zero())
}

// MaySimulate reports whether g1 may simulate g2 in tsIndex at all:
// L_i(g1,g2) > -inf.
func (f *LabelDominanceFunction[T]) MaySimulate(tsIndex int, g1, g2 lts.LabelGroupID) bool {
	return !f.QDominates(tsIndex, g1, g2).IsBottom()
}

// QDominatesNoop returns how much g dominates noop in tsIndex: g is at
// least as capable as doing nothing.
func (f *LabelDominanceFunction[T]) QDominatesNoop(tsIndex int, g lts.LabelGroupID) T {
	return f.dominatesNoop[tsIndex][g]
}

// QDominatedByNoop returns how much noop dominates g in tsIndex: doing
// nothing already subsumes g's effect (the tau noop-dominance extension
// test, and localdom's clause-3 tau-coasting term).
func (f *LabelDominanceFunction[T]) QDominatedByNoop(tsIndex int, g lts.LabelGroupID) T {
	return f.dominatedByNoop[tsIndex][g]
}

// SimulatesIrrelevant returns how much the irrelevant (self-loop/noop)
// behavior of tsIndex simulates g — localdom's clause 2, computed
// identically to QDominatedByNoop: both describe "can noop stand in for g".
func (f *LabelDominanceFunction[T]) SimulatesIrrelevant(tsIndex int, g lts.LabelGroupID) T {
	return f.simulatesIrrel[tsIndex][g]
}

// GetLabelSimulatesIrrelevant names the query by the role it plays in
// ftsprune.PropagateTransitionPruning; alias of QDominatesNoop (how much g
// itself simulates doing nothing).
func (f *LabelDominanceFunction[T]) GetLabelSimulatesIrrelevant(tsIndex int, g lts.LabelGroupID) T {
	return f.QDominatesNoop(tsIndex, g)
}

// MayDominateSummary returns the may_dominate(l1,l2) verdict. Only
// meaningful when useSummary was set at construction.
func (f *LabelDominanceFunction[T]) MayDominateSummary(l1, l2 lts.LabelID) (Summary, bool) {
	if !f.useSummary {
		return Summary{}, false
	}
	s, ok := f.summary[labelPair{l1, l2}]
	return s, ok
}
