package avl

import "golang.org/x/exp/constraints"

// height - Returns the memoized height of n, 0 for nil
func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// computeHeight - Returns 1 + the height of the highest child of n
func computeHeight[T constraints.Ordered](n *Node[T]) int {
	return 1 + max(height(n.left), height(n.right))
}

// balanceFactor - Returns height(left) - height(right), 0 for nil
func balanceFactor[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rebalance - Recomputes the height of p and restores its balance if an insertion below made it
// lean two levels to one side. It returns the root of the subtree which the caller must link in place of p.
func (A *Tree[T]) rebalance(p *Node[T]) *Node[T] {
	p.height = computeHeight(p)

	switch balanceFactor(p) {
	case 2:
		if balanceFactor(p.left) >= 0 {
			A.rotations.Right++
			return rotateRight(p)
		}
		A.rotations.LeftRight++
		return rotateLeftRight(p)

	case -2:
		if balanceFactor(p.right) <= 0 {
			A.rotations.Left++
			return rotateLeft(p)
		}
		A.rotations.RightLeft++
		return rotateRightLeft(p)
	}

	return p
}

// rotateRight - Single rotation for a left-left heavy p, the left child becomes the subtree root
func rotateRight[T constraints.Ordered](p *Node[T]) *Node[T] {
	pl := p.left

	p.left = pl.right
	pl.right = p

	p.height = computeHeight(p)
	pl.height = computeHeight(pl)

	return pl
}

// rotateLeft - Single rotation for a right-right heavy p, the right child becomes the subtree root
func rotateLeft[T constraints.Ordered](p *Node[T]) *Node[T] {
	pr := p.right

	p.right = pr.left
	pr.left = p

	p.height = computeHeight(p)
	pr.height = computeHeight(pr)

	return pr
}

// rotateLeftRight - Double rotation for a left-right heavy p, the left child's right child becomes the subtree root
func rotateLeftRight[T constraints.Ordered](p *Node[T]) *Node[T] {
	pl := p.left
	plr := pl.right

	p.left = plr.right
	pl.right = plr.left
	plr.left = pl
	plr.right = p

	p.height = computeHeight(p)
	pl.height = computeHeight(pl)
	plr.height = computeHeight(plr)

	return plr
}

// rotateRightLeft - Double rotation for a right-left heavy p, the right child's left child becomes the subtree root
func rotateRightLeft[T constraints.Ordered](p *Node[T]) *Node[T] {
	pr := p.right
	prl := pr.left

	p.right = prl.left
	pr.left = prl.right
	prl.left = p
	prl.right = pr

	p.height = computeHeight(p)
	pr.height = computeHeight(pr)
	prl.height = computeHeight(prl)

	return prl
}
