// SPDX-License-Identifier: MIT

package avl

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func balanceFactor[T any](n *node[T]) int {
	return height(n.left) - height(n.right)
}

func fix[T any](n *node[T]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

//	    n             l
//	   / \           / \
//	  l   c   →     a   n
//	 / \               / \
//	a   b             b   c
func rotateRight[T any](n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	fix(n)
	fix(l)

	return l
}

func rotateLeft[T any](n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	fix(n)
	fix(r)

	return r
}

// rebalance refreshes n's height and restores the AVL bound with a single
// or double rotation. Returns the new subtree root.
func rebalance[T any](n *node[T]) *node[T] {
	fix(n)
	bf := balanceFactor(n)
	switch {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left) // left-right case
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right) // right-left case
		}
		return rotateLeft(n)
	}

	return n
}
