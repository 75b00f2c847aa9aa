// Package cost defines the numeric lattice used throughout ftsdom's dominance
// computation: a cost-like value with a lattice bottom representing "no
// simulation possible" (−∞), plus the arithmetic (Add, Max, Min) and ordering
// (Cmp) needed by the local and label dominance fixpoints.
//
// Why a lattice, not plain int:
//
//   - Dominance values must support −∞ ("s cannot simulate t at all"), and any
//     arithmetic touching −∞ must stay −∞ rather than silently overflow or wrap.
//   - Two numeric flavors are needed by the planning literature this core
//     implements: plain integer cost (Int), and integer cost with a companion
//     epsilon count (Epsilon) for tasks that contain zero-cost actions — a
//     zero-cost action must still look strictly better than doing nothing, so
//     its contribution to a tau-label's accumulated cost is a strict
//     infinitesimal rather than a true zero.
//
// Template on cost type:
//
//	Both flavors share every piece of arithmetic the dominance fixpoint needs.
//	Rather than duplicating localdom/labeldom per flavor, both packages are
//	written once as generic code over a self-referential constraint:
//
//		func Update[T cost.Value[T]](...) { ... }
//
//	This is ordinary F-bounded Go-generics polymorphism: Int and Epsilon each
//	implement Value[Int] / Value[Epsilon], and the two instantiations are
//	resolved statically at the call site that builds a dominance artifact —
//	there is no dynamic dispatch in the hot relaxation loops.
//
// Poison value:
//
//	In addition to Bottom (the −∞ lattice element), every flavor reserves a
//	distinct "poison" value (one above Bottom) that must never appear as a
//	legitimate relation value. localdom's Update panics when a relaxed R_i
//	value IsPoison, to catch arithmetic bugs that would otherwise silently
//	produce a value indistinguishable from a very negative — but finite —
//	simulation value.
package cost
