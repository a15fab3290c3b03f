package bptree

import "fmt"

// PrettyPrint renders the tree's structure to stdout. Presentational
// only (spec.md §1 carves out CLI/logging/visualization) — generalized
// from Sahilb315-Storage-Engine/bplus-tree/btree.go's PrettyPrint.
func (t *Tree[K, V]) PrettyPrint() {
	if t.root == nil {
		fmt.Println("(empty tree)")
		return
	}
	t.printNode(t.root, "", true)
}

func (t *Tree[K, V]) printNode(n node[K, V], prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	label := "INTERNAL"
	if isLeaf[K, V](n) {
		label = "LEAF"
	} else if n == t.root {
		label = "ROOT"
	}

	fmt.Printf("%s%s%s [", prefix, connector, label)
	if l, ok := asLeaf[K, V](n); ok {
		for i, k := range l.keys {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("%v:%v", k, l.values[i])
		}
	} else {
		in, _ := asInternal[K, V](n)
		for i, k := range in.keys {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("%v", k)
		}
	}
	fmt.Println("]")

	in, ok := asInternal[K, V](n)
	if !ok {
		return
	}
	childPrefix := prefix
	if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}
	for i, c := range in.children {
		t.printNode(c, childPrefix, i == len(in.children)-1)
	}
}
