// Package lts defines the factored-transition-system data model the
// dominance core operates over: a finite label alphabet shared by several
// small Labeled Transition Systems (LTSs), and the FTSTask aggregate that
// glues them together.
//
// A world state in the planning task this core supports is the tuple of one
// local state per LTS. Labels carry a non-negative integer cost and are
// partitioned, per LTS, into label groups — equivalence classes of labels
// with identical outgoing-transition behavior in that LTS. A label that is a
// self-loop at every state of an LTS is irrelevant there; it does not change
// that LTS's local state.
//
// LTSs are immutable during the dominance fixpoint proper (package builder).
// The offline transition-pruning pass (package ftsprune) is the only code
// that mutates a TransitionSystem's transitions or label groups after
// construction, and it does so in place, returning the set of affected LTS
// ids so dependent caches (tau-distances) can be recomputed.
package lts
