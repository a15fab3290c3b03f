package bptree

import "bplusdb/common"

// splitLeaf implements spec.md §4.5's leaf split: the median key is
// copied up to the parent (not removed from the leaf level), and the
// new sibling is spliced into the leaf chain immediately after node.
func (t *Tree[K, V]) splitLeaf(n *leafNode[K, V]) {
	mid := t.order / 2
	common.Assert(n.keyCount() == t.order, "splitLeaf called on a leaf that has not overflowed")

	sib := newLeaf[K, V]()
	sib.keys = append(sib.keys, n.keys[mid:]...)
	sib.values = append(sib.values, n.values[mid:]...)
	promoted := sib.keys[0]

	n.keys = append([]K{}, n.keys[:mid]...)
	n.values = append([]V{}, n.values[:mid]...)

	sib.next = n.next
	n.next = sib
	sib.prev = n
	if sib.next != nil {
		sib.next.prev = sib
	}

	t.insertInParent(n, promoted, sib)
}

// splitInternal implements spec.md §4.5's internal split: the median
// key is promoted and removed from both node and sibling (it lives only
// in the parent), and every child handed to the sibling is reparented.
func (t *Tree[K, V]) splitInternal(n *internalNode[K, V]) {
	mid := t.order / 2
	common.Assert(n.keyCount() == t.order, "splitInternal called on a node that has not overflowed")

	promoted := n.keys[mid]

	sib := newInternal[K, V]()
	sib.keys = append(sib.keys, n.keys[mid+1:]...)
	sib.children = append(sib.children, n.children[mid+1:]...)
	for _, c := range sib.children {
		c.setParent(sib)
	}

	n.keys = append([]K{}, n.keys[:mid]...)
	n.children = append([]node[K, V]{}, n.children[:mid+1]...)

	t.insertInParent(n, promoted, sib)
}

// insertInParent implements spec.md §4.5's insert-in-parent: either
// promotes left/right into a brand new root, or splices the promoted
// key and the new sibling into the existing parent, recursing upward
// if that overflows the parent in turn.
func (t *Tree[K, V]) insertInParent(left node[K, V], promoted K, right node[K, V]) {
	parent := left.parent()
	if parent == nil {
		newRoot := newInternal[K, V]()
		newRoot.keys = []K{promoted}
		newRoot.children = []node[K, V]{left, right}
		left.setParent(newRoot)
		right.setParent(newRoot)
		t.root = newRoot
		return
	}

	i := lowerBound(parent.keys, promoted)
	parent.keys = append(parent.keys, promoted)
	copy(parent.keys[i+1:], parent.keys[i:])
	parent.keys[i] = promoted

	parent.children = append(parent.children, nil)
	copy(parent.children[i+2:], parent.children[i+1:])
	parent.children[i+1] = right
	right.setParent(parent)

	if parent.keyCount() == t.order {
		t.splitInternal(parent)
	}
}
