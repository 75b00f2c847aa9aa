// Package searchtask turns a parsed sastask.Task into the minimal
// SearchTask/FTSTask consumer pair this core depends on, by building the
// atomic-projection Factored Transition System: one TransitionSystem per
// SAS+ variable, its local states the variable's domain values, its label
// groups one-to-one with SAS+ operators (no merge-and-shrink abstraction
// is performed — that pipeline stays out of scope here, so every operator
// keeps its own group rather than being coalesced with
// behaviorally-identical siblings).
//
// Grounded on task_representation/search_task references in
// original_source/src/search/dominance/dominance_check.cc: a SearchTask
// only needs to enumerate applicable operators, apply one, and map an
// operator to its label — exactly the surface package check calls.
package searchtask
