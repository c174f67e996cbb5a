// Package avl implements an AVL tree, a binary search tree that keeps itself height balanced by rotating
// nodes on the way back up from an insertion.
//
// A Tree is not safe for concurrent use.
package avl

import (
	"github.com/golang-collections/collections/stack"
	"golang.org/x/exp/constraints"
)

// Node - One value in the tree. A node exclusively owns its children.
type Node[T constraints.Ordered] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	height int
}

// Value - Returns the value held by the node
func (N *Node[T]) Value() T {
	return N.value
}

// Left - Returns the left child, nil if there is none
func (N *Node[T]) Left() *Node[T] {
	return N.left
}

// Right - Returns the right child, nil if there is none
func (N *Node[T]) Right() *Node[T] {
	return N.right
}

// Height - Returns the memoized height of the subtree rooted at the node, a leaf has height 1
func (N *Node[T]) Height() int {
	return height(N)
}

// RotationStats - Number of rotations of each kind performed by a tree since it was created
type RotationStats struct {
	Right     int
	Left      int
	LeftRight int
	RightLeft int
}

// Tree - An AVL tree of unique values. The zero value is an empty tree.
type Tree[T constraints.Ordered] struct {
	root      *Node[T]
	size      int
	rotations RotationStats
}

// New - Returns a pointer to a new empty Tree
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Insert - Adds value to the tree unless it is already present.
// The new value becomes a leaf, after which every ancestor on the path back to the root gets its height
// recomputed and is rotated if it went out of balance.
//
// It returns:
//   - inserted is false if the value was already in the tree, the tree is then left untouched
func (A *Tree[T]) Insert(value T) (inserted bool) {
	// Links (parent child pointers) passed on the way down, the root link first
	path := stack.New()

	link := &A.root
	for *link != nil {
		n := *link
		switch {
		case value < n.value:
			path.Push(link)
			link = &n.left
		case value > n.value:
			path.Push(link)
			link = &n.right
		default:
			return false
		}
	}

	*link = &Node[T]{value: value, height: 1}
	A.size++

	for path.Len() > 0 {
		link = path.Pop().(**Node[T])
		*link = A.rebalance(*link)
	}

	return true
}

// Contains - Returns true if value is in the tree
func (A *Tree[T]) Contains(value T) bool {
	n := A.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Len - Returns the number of values in the tree
func (A *Tree[T]) Len() int {
	return A.size
}

// Height - Returns the height of the tree, 0 for an empty tree
func (A *Tree[T]) Height() int {
	return height(A.root)
}

// Root - Returns the root node, nil for an empty tree
func (A *Tree[T]) Root() *Node[T] {
	return A.root
}

// Rotations - Returns the number of rotations performed so far
func (A *Tree[T]) Rotations() RotationStats {
	return A.rotations
}

// Walk - Calls fn for each value in ascending order until fn returns false
func (A *Tree[T]) Walk(fn func(value T) bool) {
	parents := stack.New()

	n := A.root
	for n != nil || parents.Len() > 0 {
		for n != nil {
			parents.Push(n)
			n = n.left
		}
		n = parents.Pop().(*Node[T])
		if !fn(n.value) {
			return
		}
		n = n.right
	}
}

// InOrder - Returns all values in ascending order
func (A *Tree[T]) InOrder() []T {
	values := make([]T, 0, A.size)
	A.Walk(func(value T) bool {
		values = append(values, value)
		return true
	})

	return values
}
