package ftsprune

import (
	"github.com/katalvlaran/ftsdom/builder"
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/labeldom"
	"github.com/katalvlaran/ftsdom/localdom"
	"github.com/katalvlaran/ftsdom/lts"
)

// PruneTransitions removes transitions a built dominance Artifact proves
// redundant: (A) a transition whose source state, were the label never
// taken, already simulates the transition's target (noop dominates the
// label here); (B) a transition a sibling transition from the same source
// already dominates via L_i(l1,l2) + R_i(t1,t2) - cost(l1) + cost(l2) >= 0.
// Both removals are only committed when
// PropagateTransitionPruning proves removing them doesn't break some other
// label's reliance on this transition to simulate the idle action. Callers
// must re-run TransitionSystem.Finalize on every transition system named in
// the returned affected-LTS list.
func PruneTransitions[T cost.Value[T]](fts lts.FTSTask, artifact *builder.Artifact[T]) []int {
	locals := artifact.Locals
	labelRel := artifact.Label
	labels := fts.Labels()

	toRemove := make([]map[lts.Transition]bool, fts.Size())
	for i := range toRemove {
		toRemove[i] = make(map[lts.Transition]bool)
	}
	affected := make(map[int]bool)

	pruneByNoop(fts, locals, labelRel, toRemove, affected)
	pruneBySibling(fts, locals, labelRel, labels, toRemove, affected)

	for i := 0; i < fts.Size(); i++ {
		ts := fts.TS(i)
		for tr := range toRemove[i] {
			ts.RemoveTransition(tr.Src, tr.Group, tr.Tgt)
		}
	}

	affectedIDs := make([]int, 0, len(affected))
	for id := range affected {
		affectedIDs = append(affectedIDs, id)
	}
	return affectedIDs
}

// pruneByNoop is part (A): a transition is redundant wherever its source
// state already simulates its target without taking the label at all
// (labelRel.QDominatedByNoop(i, group) >= 0) and the source itself
// simulates the target directly.
func pruneByNoop[T cost.Value[T]](
	fts lts.FTSTask,
	locals []*localdom.LocalDominanceFunction[T],
	labelRel *labeldom.LabelDominanceFunction[T],
	toRemove []map[lts.Transition]bool,
	affected map[int]bool,
) {
	var zero T
	for i := 0; i < fts.Size(); i++ {
		ts := fts.TS(i)
		local := locals[i]
		for _, g := range ts.Groups() {
			if !cost.GE(labelRel.QDominatedByNoop(i, g), zero.Zero()) {
				continue
			}
			representative := ts.GroupOf(g).Labels[0]
			for _, tr := range ts.TransitionsByGroup(g) {
				if !local.Simulates(tr.Src, tr.Tgt) {
					continue
				}
				if !PropagateTransitionPruning(locals, labelRel, i, ts, tr.Src, representative, tr.Tgt) {
					continue
				}
				toRemove[i][tr] = true
				affected[i] = true
			}
		}
	}
}

// pruneBySibling is part (B): a src--l1-->t1 transition dominates a
// src--l2-->t2 sibling (same source, different label) when
// L_i(l1,l2) + R_i(t1,t2) - cost(l1) + cost(l2) >= 0, i.e. taking l1 to t1
// is never worse than taking l2 to t2 once label and state dominance are
// both accounted for.
func pruneBySibling[T cost.Value[T]](
	fts lts.FTSTask,
	locals []*localdom.LocalDominanceFunction[T],
	labelRel *labeldom.LabelDominanceFunction[T],
	labels *lts.Labels,
	toRemove []map[lts.Transition]bool,
	affected map[int]bool,
) {
	for i := 0; i < fts.Size(); i++ {
		ts := fts.TS(i)
		local := locals[i]
		groups := ts.Groups()

		for _, g1 := range groups {
			trs1 := ts.TransitionsByGroup(g1)
			for _, g2 := range groups {
				trs2 := ts.TransitionsByGroup(g2)
				lQDom := labelRel.QDominates(i, g1, g2)
				if lQDom.IsBottom() {
					continue
				}

				for _, tr1 := range trs1 {
					for _, tr2 := range trs2 {
						if tr2.Src != tr1.Src {
							continue
						}
						sQSim := local.QSimulates(tr1.Tgt, tr2.Tgt)
						if sQSim.IsBottom() {
							continue
						}

						if !dominatesSibling(lQDom, sQSim, ts.GroupOf(g1).Labels, ts.GroupOf(g2).Labels, labels) {
							continue
						}

						representative := ts.GroupOf(g1).Labels[0]
						if !PropagateTransitionPruning(locals, labelRel, i, ts, tr2.Src, representative, tr2.Tgt) {
							continue
						}
						toRemove[i][tr2] = true
						affected[i] = true
					}
				}
			}
		}
	}
}

// dominatesSibling reports whether some label pair (l1 from g1, l2 from g2,
// l1 != l2) satisfies L_i(l1,l2) + R_i(t1,t2) - cost(l1) + cost(l2) >= 0.
// g1/g2's members all share lQDom/sQSim (group membership means identical
// local transition behavior); only the per-label cost differs.
func dominatesSibling[T cost.Value[T]](lQDom, sQSim T, labels1, labels2 []lts.LabelID, labels *lts.Labels) bool {
	base := lQDom.Add(sQSim)
	var zero T
	for _, l1 := range labels1 {
		for _, l2 := range labels2 {
			if l1 == l2 {
				continue
			}
			total := base.Add(costFromInt[T](-labels.Cost(l1))).Add(costFromInt[T](labels.Cost(l2)))
			if cost.GE(total, zero.Zero()) {
				return true
			}
		}
	}
	return false
}

// costFromInt builds the flavor-T representation of a plain integer label
// cost (or its negation), a narrow type-switch bridge in the same spirit as
// cost.FromEpsilon.
func costFromInt[T cost.Value[T]](v int) T {
	var z T
	switch any(z).(type) {
	case cost.Int:
		return any(cost.Int(v)).(T)
	case cost.Epsilon:
		return any(cost.Epsilon{Base: v}).(T)
	default:
		panic("ftsprune: costFromInt does not support this flavor")
	}
}
