package sastask

import "errors"

// ErrMalformedHeader is returned when an expected magic word
// (begin_version, begin_variable, end_goal, ...) does not match what the
// reader actually finds (sas_operator.cc's check_magic).
var ErrMalformedHeader = errors.New("sastask: malformed magic word")

// ErrMalformedVersion is returned when the version section doesn't hold a
// single integer.
var ErrMalformedVersion = errors.New("sastask: malformed version section")

// ErrMalformedInt is returned when an integer field fails to parse.
var ErrMalformedInt = errors.New("sastask: malformed integer field")

// ErrNoGoal is returned when the goal section declares zero facts
// (sas_task.cc's read_goal: "Task has no goal condition!").
var ErrNoGoal = errors.New("sastask: task has no goal condition")
