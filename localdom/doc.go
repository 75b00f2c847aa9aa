// Package localdom computes, per LTS, the numeric q-simulation relation
// R_i(s,t): a table of cost.Value[T] telling how much slack state s has
// when trying to simulate state t locally.
//
// R_i starts goal-respecting (InitGoalRespecting) and is iteratively
// refined by Update, a Bellman-style relaxation that only ever decreases
// cells, never increases them — the relation is always a sound lower bound
// on the true q-simulation value, even if a time budget forces an early
// exit (Update returns the number of inner passes it managed to run).
//
// Update needs the cross-LTS label relation to score candidate responses;
// rather than importing package labeldom directly (which itself needs
// Update's local relations as an input, and would create an import cycle),
// it accepts a LabelRelation[T] interface capturing exactly the three
// queries the relaxation formula uses. labeldom.LabelDominanceFunction[T]
// satisfies it structurally — the usual Go way of wiring two mutually
// dependent components without package coupling.
package localdom
