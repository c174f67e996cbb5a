package avl

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Print - Writes the tree to w in pre-order, one node per line as "value (h:height)", children
// indented two spaces deeper than their parent.
func (A *Tree[T]) Print(w io.Writer) (err error) {
	return printNode(w, A.root, 0)
}

func printNode[T constraints.Ordered](w io.Writer, n *Node[T], depth int) (err error) {
	if n == nil {
		return
	}

	_, err = fmt.Fprintf(w, "%s%v (h:%d)\n", strings.Repeat("  ", depth), n.value, n.height)
	if err != nil {
		return
	}
	err = printNode(w, n.left, depth+1)
	if err != nil {
		return
	}

	return printNode(w, n.right, depth+1)
}

// Validate - Checks every node of the tree for ordering, memoized height and balance.
// It returns an error describing the first violation found, nil for a valid tree.
func (A *Tree[T]) Validate() (err error) {
	var count int
	_, err = validateNode(A.root, nil, nil, &count)
	if err != nil {
		return
	}
	if count != A.size {
		err = fmt.Errorf("tree holds %d nodes but size is %d", count, A.size)
	}

	return
}

// validateNode - Validates the subtree rooted at n whose values must lie strictly between low and high (nil for unbounded)
func validateNode[T constraints.Ordered](n *Node[T], low, high *T, count *int) (h int, err error) {
	if n == nil {
		return
	}
	*count++

	if low != nil && !(n.value > *low) {
		err = fmt.Errorf("node %v is not greater than %v", n.value, *low)
		return
	}
	if high != nil && !(n.value < *high) {
		err = fmt.Errorf("node %v is not less than %v", n.value, *high)
		return
	}

	hl, err := validateNode(n.left, low, &n.value, count)
	if err != nil {
		return
	}
	hr, err := validateNode(n.right, &n.value, high, count)
	if err != nil {
		return
	}

	h = 1 + max(hl, hr)
	if n.height != h {
		err = fmt.Errorf("node %v has height %d, expected %d", n.value, n.height, h)
		return
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		err = fmt.Errorf("node %v has balance factor %d", n.value, bf)
	}

	return
}
