// Package tau identifies, per LTS, the labels that act as invisible
// ("tau") moves from every other LTS's point of view, and precomputes the
// all-pairs shortest-path and goal-distance tables over the subgraph those
// labels induce.
//
// A label is tau in LTS i if applying it is undetectable by any other LTS:
// either it is a plain self-loop everywhere else (the self-loop
// definition), or — recursive extension — its effect elsewhere can always
// be undone by transitions that are themselves already tau there. A third,
// config-gated extension (noop-dominance) additionally admits a label as
// tau in i if the label relation built by labeldom shows it is dominated by
// doing nothing in every other LTS.
//
// Tau-distances are computed by handing a derived gonum
// (gonum.org/v1/gonum/graph/simple) weighted directed graph — one node per
// local state, one edge per tau-labelled transition — to
// gonum.org/v1/gonum/graph/path.DijkstraAllPaths (or, in
// reachability-only mode, path.BreadthFirstFrom). Each LTS's tau-distances
// carry a monotonic version id; any reader that caches a Distances value
// must recheck the id before trusting a stale read.
package tau
