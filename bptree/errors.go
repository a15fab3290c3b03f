package bptree

import "errors"

// ErrInvalidOrder is returned by New when order < 3 (spec.md §7,
// "Configuration error").
var ErrInvalidOrder = errors.New("bptree: order must be at least 3")
