// Package check answers search-time dominance queries against a dominance
// Artifact produced by package builder: does this state strictly dominate
// the initial state, does one applicable operator already dominate every
// sibling, and which successors of a parent state are safe to prune.
//
// DominanceCheck keeps per-call scratch slices as fields, reused across
// calls rather than reallocated, mirroring
// original_source/src/search/dominance/dominance_check.h's mutable
// "relevant_simulations"/"parent"/"succ" members — a search loop calls
// these methods once per expanded state, often thousands of times per
// second, so the reuse matters.
package check
