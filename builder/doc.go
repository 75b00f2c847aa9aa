// Package builder coordinates the coupled fixpoint that produces a
// dominance Artifact from a Factored Transition System: an outer loop
// alternating per-LTS local relaxation with label-relation refinement,
// and a tau-restart loop that reinitializes everything when the tau-label
// set grows via the noop-dominance extension.
//
// These three loops — outer (label+local coupling), inner (single-LTS
// stabilization), tau-restart (topology change) — are kept as three
// explicit loops in Build: collapsing them would break the requirement
// that R_i is always reinitialized goal-respectingly on a tau-restart.
//
// Configuration follows the functional-options pattern used throughout
// lvlath (lvlath/dijkstra.Option, lvlath/builder.Option): option
// constructors validate their argument and panic on a meaningless value
// (e.g. a negative truncate value), so that algorithms never panic and
// only option constructors do (lvlath/builder/options.go).
package builder
