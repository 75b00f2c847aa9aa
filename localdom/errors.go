package localdom

import "errors"

// ErrLTSTooLarge names an LTS whose size exceeds a configured cap. New has
// no size cap and never returns it; builder handles oversized LTSs by
// calling CancelSimulationComputation.
var ErrLTSTooLarge = errors.New("localdom: transition system exceeds configured size cap")
