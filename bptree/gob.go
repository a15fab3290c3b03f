package bptree

import (
	"bytes"
	"encoding/gob"
)

// nodeRecord is the flat, cycle-free serialization of one tree node.
// Children/next are stored as indices into treeRecord.Nodes rather than
// pointers, which is what lets gob encode a graph that otherwise has
// parent<->child reference cycles (spec.md §9 Design Notes,
// "Parent back-references form cycles"; DESIGN.md documents why this
// module keeps pointer-based parents in memory but serializes them out
// rather than adopting an arena).
type nodeRecord[K Ordered, V any] struct {
	IsLeaf   bool
	Keys     []K
	Values   []V // leaf only
	Children []int // internal only
	Next     int   // leaf only; -1 means nil
}

type treeRecord[K Ordered, V any] struct {
	Order   int
	MinKeys int
	Root    int
	Nodes   []nodeRecord[K, V]
}

// GobEncode flattens the tree into a treeRecord and gob-encodes it.
// Grounded on BibekPathak-shark-db/internal/{pager,catalog} which
// round-trips a tree through encoding/gob via a bytes.Buffer.
func (t *Tree[K, V]) GobEncode() ([]byte, error) {
	indices := make(map[node[K, V]]int)
	var order []node[K, V]

	visit := func(n node[K, V]) int {
		if idx, ok := indices[n]; ok {
			return idx
		}
		idx := len(order)
		indices[n] = idx
		order = append(order, n)
		return idx
	}

	rootIdx := visit(t.root)
	queue := []node[K, V]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if in, ok := asInternal[K, V](n); ok {
			for _, c := range in.children {
				if _, seen := indices[c]; !seen {
					visit(c)
					queue = append(queue, c)
				}
			}
		}
	}

	rec := treeRecord[K, V]{
		Order:   t.order,
		MinKeys: t.minKeys,
		Root:    rootIdx,
		Nodes:   make([]nodeRecord[K, V], len(order)),
	}
	for i, n := range order {
		if l, ok := asLeaf[K, V](n); ok {
			next := -1
			if l.next != nil {
				next = indices[l.next]
			}
			rec.Nodes[i] = nodeRecord[K, V]{IsLeaf: true, Keys: l.keys, Values: l.values, Next: next}
			continue
		}
		in, _ := asInternal[K, V](n)
		children := make([]int, len(in.children))
		for j, c := range in.children {
			children[j] = indices[c]
		}
		rec.Nodes[i] = nodeRecord[K, V]{IsLeaf: false, Keys: in.keys, Children: children}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode rebuilds a tree from a treeRecord, reconstructing parent
// back-pointers from the structural children list (spec.md §4.10:
// "implementers may choose to rebuild them during restore").
func (t *Tree[K, V]) GobDecode(data []byte) error {
	var rec treeRecord[K, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return err
	}

	nodes := make([]node[K, V], len(rec.Nodes))
	for i, e := range rec.Nodes {
		if e.IsLeaf {
			nodes[i] = &leafNode[K, V]{keys: e.Keys, values: e.Values}
		} else {
			nodes[i] = &internalNode[K, V]{keys: e.Keys}
		}
	}
	for i, e := range rec.Nodes {
		if e.IsLeaf {
			l := nodes[i].(*leafNode[K, V])
			if e.Next >= 0 {
				l.next = nodes[e.Next].(*leafNode[K, V])
			}
			continue
		}
		in := nodes[i].(*internalNode[K, V])
		in.children = make([]node[K, V], len(e.Children))
		for j, ci := range e.Children {
			in.children[j] = nodes[ci]
			nodes[ci].setParent(in)
		}
	}

	t.order = rec.Order
	t.minKeys = rec.MinKeys
	t.root = nodes[rec.Root]

	// prev pointers are not serialized; rebuild by walking the restored
	// forward leaf chain from the leftmost leaf.
	n := t.root
	for {
		in, ok := asInternal[K, V](n)
		if !ok {
			break
		}
		n = in.children[0]
	}
	leaf, _ := asLeaf[K, V](n)
	for leaf != nil && leaf.next != nil {
		leaf.next.prev = leaf
		leaf = leaf.next
	}
	return nil
}
