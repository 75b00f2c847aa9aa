// Package pruning wires package builder and package check together into
// the small PruningMethod surface a generic search loop calls once per
// expanded state, grounded directly on
// original_source/src/search/dominance/numeric_dominance_pruning.cc:
// build the dominance Artifact once in Initialize, then in every
// PruneOperators call optionally run action-selection pruning first and,
// failing that, prune-dominated-by-parent-or-initial-state.
//
// The hosting binary's process exit codes
// (0/4/5/6/1-3 in the original's utils::ExitCode convention, e.g. the
// "exit after preprocessing" diagnostic flag) are the search glue's
// contract, not reproduced here: Adapter reports failures as ordinary
// Go errors and leaves process-exit policy to the caller.
package pruning
