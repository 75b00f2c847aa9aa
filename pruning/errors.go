package pruning

import "errors"

// ErrAlreadyInitialized is returned by Initialize when called a second time
// on the same Adapter (original_source guards this with its own
// "initialized" bool; matched here as a reported error instead of a silent
// no-op, since a caller re-initializing almost always indicates a bug).
var ErrAlreadyInitialized = errors.New("pruning: Adapter already initialized")

// ErrNotInitialized is returned by PruneOperators when called before
// Initialize.
var ErrNotInitialized = errors.New("pruning: Adapter used before Initialize")
