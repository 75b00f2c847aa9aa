// Package sastask parses the SAS+ textual encoding a translator emits
// upstream of this core: magic-word framed sections for the version,
// metric flag, variables, mutex groups, initial state, goal, and
// operators.
//
// Grounded directly on
// original_source/src/search/task_representation/sas_task.cc's
// read_from_file/read_variables/read_mutexes/read_goal/read_operators and
// sas_operator.cc's SASOperator(istream&) constructor. This core never
// consumes a parsed Task directly — the merge-and-shrink collaborator that
// turns SAS+ into an lts.FTSTask is out of scope — so Parse only needs to
// read far enough to be a believable upstream producer for tests, and
// axioms are recorded but not further interpreted.
package sastask
