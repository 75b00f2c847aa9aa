package labeldom

import "errors"

// ErrLTSCountMismatch is returned by Init/Update when the supplied locals
// slice doesn't have one entry per LTS in the task.
var ErrLTSCountMismatch = errors.New("labeldom: locals slice length does not match LTS count")
