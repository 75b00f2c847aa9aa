package ftsprune

import (
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/labeldom"
	"github.com/katalvlaran/ftsdom/localdom"
	"github.com/katalvlaran/ftsdom/lts"
)

// PropagateTransitionPruning decides whether removing the src--label-->target
// transition in ts (transition system tsID) is actually safe once its
// knock-on effect on "does noop still simulate label here" is accounted
// for: every alternative label that could replace it must itself still be
// covered by some surviving transition
// (DominanceFunction::propagate_transition_pruning ported directly).
func PropagateTransitionPruning[T cost.Value[T]](
	locals []*localdom.LocalDominanceFunction[T],
	labelRel *labeldom.LabelDominanceFunction[T],
	tsID int,
	ts *lts.TransitionSystem,
	src lts.StateID,
	label lts.LabelID,
	target lts.StateID,
) bool {
	nsr := locals[tsID]
	group, _ := ts.GroupForLabel(label)

	tlSeen := make(map[lts.StateID]bool)
	var tl []lts.StateID
	tlpSeen := make(map[lts.StateID]bool)
	var tlp []lts.StateID

	var zero T
	stillSimulatesIrrelevant := !cost.GE(labelRel.GetLabelSimulatesIrrelevant(tsID, group), zero.Zero())

	for _, tr := range ts.OutgoingFrom(src) {
		for _, trLabel := range ts.GroupOf(tr.Group).Labels {
			switch {
			case trLabel == label:
				if tr.Tgt == target {
					continue
				}
				if !stillSimulatesIrrelevant && nsr.Simulates(tr.Tgt, tr.Src) {
					stillSimulatesIrrelevant = true
				}
				if !tlSeen[tr.Tgt] {
					tlSeen[tr.Tgt] = true
					tl = append(tl, tr.Tgt)
				}
			case labelRel.MaySimulate(tsID, group, tr.Group) && nsr.Simulates(target, tr.Tgt):
				if !tlpSeen[tr.Tgt] {
					tlpSeen[tr.Tgt] = true
					tlp = append(tlp, tr.Tgt)
				}
			}
		}
	}

	if !stillSimulatesIrrelevant {
		return false
	}

	for _, t := range tlp {
		if tlSeen[t] {
			continue
		}
		found := false
		for _, t2 := range tl {
			if nsr.Simulates(t2, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
