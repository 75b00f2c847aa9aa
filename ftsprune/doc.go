// Package ftsprune performs offline transition pruning over a Factored
// Transition System once a dominance Artifact has been built: removing
// transitions whose effect the idle (noop) action already covers, and
// transitions a sibling transition from the same source state already
// dominates.
//
// Grounded directly on
// original_source/src/search/dominance/numeric_dominance_fts_pruning.cc's
// two-part structure, minus its `l_id == 348` debug branch and its
// commented-out dead-end statistics counter (both dead code in the
// original, not carried over here).
package ftsprune
