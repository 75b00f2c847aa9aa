package labeldom

import (
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

// Init seeds L with each LTS's first refinement pass: conceptually "seed
// with +∞ then clamp to the best first-pass value per LTS", but since this
// package's lattice has no finite +∞, the first pass is computed directly
// against the already goal-respecting-initialized locals, which is
// equivalent. locals must have one entry per LTS in the task.
func (f *LabelDominanceFunction[T]) Init(locals []LocalRelation[T]) error {
	if len(locals) != f.task.Size() {
		return ErrLTSCountMismatch
	}
	f.refineAll(locals)
	f.rebuildSummary()
	return nil
}

// Update runs one refinement round over every LTS and reports whether any
// value decreased.
func (f *LabelDominanceFunction[T]) Update(locals []LocalRelation[T]) (bool, error) {
	if len(locals) != f.task.Size() {
		return false, ErrLTSCountMismatch
	}
	changed := f.refineAll(locals)
	if changed {
		f.rebuildSummary()
	}
	return changed, nil
}

func (f *LabelDominanceFunction[T]) refineAll(locals []LocalRelation[T]) bool {
	changed := false
	for i := 0; i < f.task.Size(); i++ {
		ts := f.task.TS(i)
		groups := ts.Groups()
		for _, g1 := range groups {
			for _, g2 := range groups {
				v := refineGroupPair(ts, locals[i], g1, g2)
				key := groupPair{g1, g2}
				if old, ok := f.l[i][key]; !ok || v.Cmp(old) < 0 {
					f.l[i][key] = v
					changed = true
				}
			}
			dn, ds := refineIrrelevant(ts, locals[i], g1)
			if old, ok := f.dominatedByNoop[i][g1]; !ok || dn.Cmp(old) < 0 {
				f.dominatedByNoop[i][g1] = dn
				f.simulatesIrrel[i][g1] = dn
				changed = true
			}
			if old, ok := f.dominatesNoop[i][g1]; !ok || ds.Cmp(old) < 0 {
				f.dominatesNoop[i][g1] = ds
				changed = true
			}
		}
	}
	return changed
}

// refineGroupPair implements the per-LTS refinement rule:
// new(g1,g2) = min over (s -g2-> t) of max over (s -g1-> t') of R_i(t',t).
func refineGroupPair[T cost.Value[T]](ts *lts.TransitionSystem, local LocalRelation[T], g1, g2 lts.LabelGroupID) T {
	var result T
	first := true
	g2Trans := ts.TransitionsByGroup(g2)
	g1Trans := ts.TransitionsByGroup(g1)
	for _, t2 := range g2Trans {
		var best T
		bestSet := false
		for _, t1 := range g1Trans {
			if t1.Src != t2.Src {
				continue
			}
			v := local.QSimulates(t1.Tgt, t2.Tgt)
			if !bestSet || v.Cmp(best) > 0 {
				best = v
				bestSet = true
			}
		}
		if !bestSet {
			best = best.Bottom()
		}
		if !first && best.Cmp(result) >= 0 {
			continue
		}
		result = best
		first = false
	}
	return result
}

// refineIrrelevant computes g's dominated-by-noop and dominates-noop
// values from its own transitions' self-pair local-relation scores.
func refineIrrelevant[T cost.Value[T]](ts *lts.TransitionSystem, local LocalRelation[T], g lts.LabelGroupID) (dominatedByNoop, dominatesNoop T) {
	trans := ts.TransitionsByGroup(g)
	first := true
	for _, t := range trans {
		v1 := local.QSimulates(t.Src, t.Tgt) // how well staying put simulates g's move
		v2 := local.QSimulates(t.Tgt, t.Src) // how well g's result simulates the original state
		if first {
			dominatedByNoop, dominatesNoop = v1, v2
			first = false
			continue
		}
		if v1.Cmp(dominatedByNoop) < 0 {
			dominatedByNoop = v1
		}
		if v2.Cmp(dominatesNoop) < 0 {
			dominatesNoop = v2
		}
	}
	return dominatedByNoop, dominatesNoop
}

// rebuildSummary recomputes may_dominate(l1,l2) for every label pair from
// the current per-LTS L tables, keeping the summary consistent with them.
func (f *LabelDominanceFunction[T]) rebuildSummary() {
	if !f.useSummary {
		return
	}
	var zero T
	labels := f.task.Labels()
	n := labels.Size()
	for l1 := 0; l1 < n; l1++ {
		for l2 := 0; l2 < n; l2++ {
			if l1 == l2 {
				continue
			}
			allDominate := true
			noneDominate := true
			specificTS := -1
			for i := 0; i < f.task.Size(); i++ {
				ts := f.task.TS(i)
				g1, ok1 := ts.GroupForLabel(lts.LabelID(l1))
				g2, ok2 := ts.GroupForLabel(lts.LabelID(l2))
				if !ok1 || !ok2 {
					continue
				}
				v := f.QDominates(i, g1, g2)
				if cost.GE(v, zero.Zero()) {
					noneDominate = false
					specificTS = i
				} else {
					allDominate = false
				}
			}
			switch {
			case allDominate:
				f.summary[labelPair{lts.LabelID(l1), lts.LabelID(l2)}] = Summary{Kind: SummaryAll}
			case noneDominate:
				f.summary[labelPair{lts.LabelID(l1), lts.LabelID(l2)}] = Summary{Kind: SummaryNone}
			default:
				f.summary[labelPair{lts.LabelID(l1), lts.LabelID(l2)}] = Summary{Kind: SummarySpecificTS, TS: specificTS}
			}
		}
	}
}
