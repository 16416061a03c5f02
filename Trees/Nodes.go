package Trees

import "cmp"

// Node of a BSTree. A nil *Node is an absent subtree.
// Nodes handed out by the tree are read only: the children can be
// inspected through Left and Right but not replaced.
type Node[T cmp.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
func leftmost[T cmp.Ordered](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func rightmost[T cmp.Ordered](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// height of the subtree rooting at n in edges. An absent subtree has
// height -1 and a leaf has height 0. Recursive.
func height[T cmp.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return max(height(n.l), height(n.r)) + 1
}

// size counts the nodes of the subtree rooting at n. Recursive.
func size[T cmp.Ordered](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return size(n.l) + size(n.r) + 1
}
