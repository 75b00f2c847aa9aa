package tau

import (
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

// LabelMayBeTauIn reports whether label is a self-loop at every state of
// ts, i.e. is irrelevant there (label_may_be_tau_in). A
// label that never appears in ts at all never changes ts's local state, so
// it trivially qualifies too.
func LabelMayBeTauIn(ts *lts.TransitionSystem, label lts.LabelID) bool {
	group, ok := ts.GroupForLabel(label)
	if !ok {
		return true
	}
	return ts.IsIrrelevant(group)
}

// ComputeInitialTauLabels returns, for each LTS i, the labels that are
// may-tau in every LTS j≠i (the base case). The augmented cost
// recorded for each is the label's own integer cost, lifted through
// cost.EpsilonIfZero so a zero-cost label still contributes a strict
// infinitesimal to any tau-distance path that uses it.
func ComputeInitialTauLabels(fts lts.FTSTask) []*Labels {
	n := fts.Size()
	numLabels := fts.Labels().Size()
	result := make([]*Labels, n)
	for i := 0; i < n; i++ {
		result[i] = NewLabels()
	}
	for lID := 0; lID < numLabels; lID++ {
		label := lts.LabelID(lID)
		lc := cost.EpsilonIfZero(fts.Labels().Cost(label))
		for i := 0; i < n; i++ {
			ok := true
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if !LabelMayBeTauIn(fts.TS(j), label) {
					ok = false
					break
				}
			}
			if ok {
				result[i].Add(label, lc)
			}
		}
	}
	return result
}

// AddRecursiveTauLabels extends each LTS's tau set: a label not yet tau in
// i is added if, for every j≠i where it is not already may-tau-trivially,
// LTS j is fully invertible under its current tau set (distances[j]).
// The label's augmented cost is the sum of the invertibility costs of
// every such j. Reports whether anything changed, so the
// caller knows whether to recompute tau-distances and retry.
func AddRecursiveTauLabels(fts lts.FTSTask, tauSets []*Labels, distances []*Distances) bool {
	n := fts.Size()
	numLabels := fts.Labels().Size()
	changed := false
	for i := 0; i < n; i++ {
		for lID := 0; lID < numLabels; lID++ {
			label := lts.LabelID(lID)
			if tauSets[i].Contains(label) {
				continue
			}
			total := cost.Epsilon{}
			allInvertible := true
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if LabelMayBeTauIn(fts.TS(j), label) {
					continue
				}
				inv, ok := distances[j].CostFullyInvertible()
				if !ok {
					allInvertible = false
					break
				}
				total = total.Add(inv)
			}
			if allInvertible {
				if tauSets[i].Add(label, total) {
					changed = true
				}
			}
		}
	}
	return changed
}

// AddNoopDominanceTauLabels extends each LTS's tau set using the label
// relation: a label not yet tau in i becomes tau if dominatedByNoop
// reports it dominated by doing nothing in every LTS j≠i (the
// noop-dominance extension). dominatedByNoop is supplied by the caller
// (package builder) because the underlying query lives on the generic
// LabelDominanceFunction[T], which tau does not depend on — keeping this
// package free of a type parameter it has no other use for.
func AddNoopDominanceTauLabels(fts lts.FTSTask, tauSets []*Labels, dominatedByNoop func(tsIndex int, label lts.LabelID) bool) bool {
	n := fts.Size()
	numLabels := fts.Labels().Size()
	changed := false
	for i := 0; i < n; i++ {
		for lID := 0; lID < numLabels; lID++ {
			label := lts.LabelID(lID)
			if tauSets[i].Contains(label) {
				continue
			}
			ok := true
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if LabelMayBeTauIn(fts.TS(j), label) {
					continue
				}
				if !dominatedByNoop(j, label) {
					ok = false
					break
				}
			}
			if ok {
				lc := cost.EpsilonIfZero(fts.Labels().Cost(label))
				if tauSets[i].Add(label, lc) {
					changed = true
				}
			}
		}
	}
	return changed
}
