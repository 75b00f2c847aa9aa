package localdom

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

// Update performs Bellman-style relaxation passes over R_i until no cell
// decreases further or budget is exhausted, and returns the number of
// inner passes it completed. A pair already at Bottom is
// skipped — it cannot decrease any further, so revisiting it wastes a
// scan once the relation has stabilized there.
func (f *LocalDominanceFunction[T]) Update(labelDom LabelRelation[T], budget time.Duration) int {
	if f.cancelled {
		return 0
	}
	deadline := time.Now().Add(budget)
	passes := 0
	for {
		changed := false
		for s := 0; s < f.n; s++ {
			for t := 0; t < f.n; t++ {
				if s == t || f.r[s][t].IsBottom() {
					continue
				}
				updated, ok := f.bestResponse(lts.StateID(s), lts.StateID(t), labelDom)
				if !ok {
					continue
				}
				updated = updated.Min(f.r[s][t]).Truncate(f.truncateValue)
				if updated.IsPoison() {
					panic(fmt.Sprintf("localdom: poison value at R_%d(%d,%d)", f.tsIndex, s, t))
				}
				if updated.Cmp(f.r[s][t]) < 0 {
					f.r[s][t] = updated
					changed = true
				}
			}
		}
		passes++
		if !changed || time.Now().After(deadline) {
			break
		}
	}
	return passes
}

// bestResponse computes min over t's outgoing transitions of the best
// response from s (the best(...) formula). ok is false when t
// has no outgoing transitions — the minimum over an empty set leaves R_i
// unconstrained, so the caller must keep the old value rather than treat
// the result as a real candidate.
func (f *LocalDominanceFunction[T]) bestResponse(s, t lts.StateID, labelDom LabelRelation[T]) (T, bool) {
	var zero T
	out := f.ts.OutgoingFrom(t)
	if len(out) == 0 {
		return zero.Zero(), false
	}
	result := f.clauseMax(s, out[0].Group, out[0].Tgt, labelDom)
	for _, tr := range out[1:] {
		c := f.clauseMax(s, tr.Group, tr.Tgt, labelDom)
		if c.Cmp(result) < 0 {
			result = c
		}
	}
	return result, true
}

// clauseMax computes best(t, g_t, t') for one outgoing transition of t:
// the max of three candidate responses s can offer.
func (f *LocalDominanceFunction[T]) clauseMax(s lts.StateID, gt lts.LabelGroupID, tPrime lts.StateID, labelDom LabelRelation[T]) T {
	var zero T
	result := zero.Bottom()

	// Clause 1: s answers with one of its own outgoing transitions g_s to
	// s', scored by how much g_s dominates g_t at the label level plus how
	// well s' simulates t'.
	for _, tr := range f.ts.OutgoingFrom(s) {
		candidate := labelDom.QDominates(f.tsIndex, tr.Group, gt).Add(f.r[tr.Tgt][tPrime])
		result = result.Max(candidate)
	}

	// Clause 2: s stays put, using a self-loop dominated by g_t.
	stay := labelDom.SimulatesIrrelevant(f.tsIndex, gt).Add(f.r[s][tPrime])
	result = result.Max(stay)

	// Clause 3: s coasts toward its own goal via already-tau transitions;
	// valid whenever g_t is itself dominated by doing nothing, since then
	// t's move contributes nothing t needed to be matched against.
	if f.tauDist != nil {
		tauTerm := cost.FromEpsilon[T](f.tauDist.GoalDistanceCost(s)).Negate().Add(labelDom.QDominatedByNoop(f.tsIndex, gt))
		result = result.Max(tauTerm)
	}

	return result
}
