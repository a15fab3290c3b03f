package bptree

import "cmp"

// Ordered is the key constraint: any type supporting <, ==, > natively.
// spec.md §3 calls this "opaque totally-ordered"; every concrete key
// used in this module (table search keys, tree tests) is a native
// ordered type, so the stdlib cmp.Ordered constraint is used directly
// rather than threading a comparator function through every node.
type Ordered = cmp.Ordered
