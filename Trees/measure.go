package Trees

import "cmp"

// unbalanced is returned by balancedHeight in place of a height once some
// subtree is found unbalanced. Real heights are never below -1.
const unbalanced = -2

// Height of the node holding v: the number of edges on the longest
// downward path from it to a leaf. Returns (0, false) if v isn't in the tree.
// Time: O(D + size of the subtree)
func (u *BSTree[T]) Height(v T) (int, bool) {
	if n := u.Find(v); n != nil {
		return height(n), true
	}
	return 0, false
}

// TreeHeight is the height of the root, -1 for an empty tree.
func (u *BSTree[T]) TreeHeight() int {
	return height(u.root)
}

// Depth of the node holding v: the number of edges from the root to it.
// Returns (0, false) if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Depth(v T) (int, bool) {
	d := 0
	for cur := u.root; cur != nil; d++ {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return d, true
		}
	}
	return 0, false
}

// balancedHeight returns the height of the subtree rooting at n, or
// unbalanced as soon as some node in it has children whose heights
// differ by more than 1.
func balancedHeight[T cmp.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	lh := balancedHeight(n.l)
	if lh == unbalanced {
		return unbalanced
	}
	rh := balancedHeight(n.r)
	if rh == unbalanced || lh-rh > 1 || rh-lh > 1 {
		return unbalanced
	}
	return max(lh, rh) + 1
}

// IsBalanced reports whether, for every node, the heights of the left and
// right subtrees differ by at most 1. Recursive.
// Time: O(n)
func (u *BSTree[T]) IsBalanced() bool {
	return balancedHeight(u.root) != unbalanced
}

// Rebalance rebuilds the tree from its values so that it has minimal
// height. The set of values and their in-order sequence don't change.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Rebalance() {
	u.root = buildTree(u.Values())
}
