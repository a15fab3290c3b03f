package bptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertInvariants checks every structural invariant from spec.md §3/§8
// against the live tree. Used after mutations in property-style tests.
func assertInvariants[K Ordered, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()

	depth := -1
	var walk func(n node[K, V], level int)
	walk = func(n node[K, V], level int) {
		if in, ok := asInternal[K, V](n); ok {
			assert.Equal(t, len(in.keys)+1, len(in.children), "internal node arity")
			for i := 1; i < len(in.keys); i++ {
				assert.Less(t, in.keys[i-1], in.keys[i], "internal keys must be strictly ascending")
			}
			if in != tr.root {
				assert.GreaterOrEqual(t, len(in.keys), tr.minKeys, "non-root min keys")
				assert.LessOrEqual(t, len(in.keys), tr.order-1, "max keys")
			}
			for _, c := range in.children {
				assert.Equal(t, in, c.parent(), "child parent back-reference")
				walk(c, level+1)
			}
			return
		}
		l := n.(*leafNode[K, V])
		assert.Equal(t, len(l.keys), len(l.values), "leaf key/value arity")
		for i := 1; i < len(l.keys); i++ {
			assert.Less(t, l.keys[i-1], l.keys[i], "leaf keys must be strictly ascending")
		}
		if l != tr.root {
			assert.GreaterOrEqual(t, len(l.keys), tr.minKeys, "non-root min keys")
			assert.LessOrEqual(t, len(l.keys), tr.order-1, "max keys")
		}
		if depth == -1 {
			depth = level
		} else {
			assert.Equal(t, depth, level, "all leaves must be at the same depth")
		}
	}
	walk(tr.root, 0)

	// Leaf chain: walking forward from the leftmost leaf yields strictly
	// ascending, tree-wide unique keys.
	it := tr.SeekFirst()
	var prevKey K
	havePrev := false
	seen := make(map[any]bool)
	for it.Valid() {
		k := it.Key()
		if havePrev {
			assert.Less(t, prevKey, k, "leaf chain must be strictly ascending")
		}
		assert.False(t, seen[any(k)], "keys must be unique tree-wide")
		seen[any(k)] = true
		prevKey, havePrev = k, true
		it.Next()
	}
}
