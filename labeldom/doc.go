// Package labeldom computes the cross-LTS label dominance relation
// L_i(g1,g2): how much label group g1 dominates label group g2 within LTS
// i, plus the "dominated by noop" / "dominates noop" companion values,
// and a derived may_dominate(l1,l2) summary recording whether l1 may
// dominate l2 at the label level in ALL, NONE, or some of the LTSs (then
// naming the highest-indexed one).
//
// Like package localdom, this package needs the per-LTS local relations to
// run its own refinement formula, while localdom's relaxation needs this
// package's queries — a direct mutual import would cycle. labeldom instead
// accepts a LocalRelation[T] interface (just the QSimulates query it
// actually uses); localdom.LocalDominanceFunction[T] satisfies it
// structurally.
package labeldom
