package check

import "errors"

// ErrNotInitialized is the panic value of any query method called before
// Initialize.
var ErrNotInitialized = errors.New("check: DominanceCheck used before Initialize")
