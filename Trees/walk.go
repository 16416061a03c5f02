package Trees

import (
	"cmp"

	"github.com/g-m-twostay/bst-utils/Queues"
)

// LevelOrder calls f on every node breadth first: the root, then the
// nodes of depth 1 from left to right, then depth 2 and so on.
// Returns InvalidArgumentError without visiting anything if f is nil.
// Time: O(n); Space: O(width)
func (u *BSTree[T]) LevelOrder(f func(*Node[T])) error {
	if f == nil {
		return &InvalidArgumentError{"LevelOrder"}
	}
	if u.root == nil {
		return nil
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		f(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return nil
}

// LevelOrderRec is LevelOrder visiting one level at a time recursively
// instead of using a queue. The order of visits is the same.
// Time: O(n); Space: O(width)
func (u *BSTree[T]) LevelOrderRec(f func(*Node[T])) error {
	if f == nil {
		return &InvalidArgumentError{"LevelOrderRec"}
	}
	if u.root != nil {
		levels([]*Node[T]{u.root}, f)
	}
	return nil
}

func levels[T cmp.Ordered](level []*Node[T], f func(*Node[T])) {
	if len(level) == 0 {
		return
	}
	next := make([]*Node[T], 0, len(level)<<1)
	for _, n := range level {
		f(n)
		if n.l != nil {
			next = append(next, n.l)
		}
		if n.r != nil {
			next = append(next, n.r)
		}
	}
	levels(next, f)
}

// InOrder calls f on the left subtree, then the node, then the right
// subtree, so values are visited in ascending order. Recursive.
// Returns InvalidArgumentError without visiting anything if f is nil.
// Time: O(n)
func (u *BSTree[T]) InOrder(f func(*Node[T])) error {
	if f == nil {
		return &InvalidArgumentError{"InOrder"}
	}
	inOrder(u.root, f)
	return nil
}

func inOrder[T cmp.Ordered](n *Node[T], f func(*Node[T])) {
	if n != nil {
		inOrder(n.l, f)
		f(n)
		inOrder(n.r, f)
	}
}

// PreOrder calls f on the node before its left and right subtrees. Recursive.
// Returns InvalidArgumentError without visiting anything if f is nil.
// Time: O(n)
func (u *BSTree[T]) PreOrder(f func(*Node[T])) error {
	if f == nil {
		return &InvalidArgumentError{"PreOrder"}
	}
	preOrder(u.root, f)
	return nil
}

func preOrder[T cmp.Ordered](n *Node[T], f func(*Node[T])) {
	if n != nil {
		f(n)
		preOrder(n.l, f)
		preOrder(n.r, f)
	}
}

// PostOrder calls f on the node after its left and right subtrees. Recursive.
// Returns InvalidArgumentError without visiting anything if f is nil.
// Time: O(n)
func (u *BSTree[T]) PostOrder(f func(*Node[T])) error {
	if f == nil {
		return &InvalidArgumentError{"PostOrder"}
	}
	postOrder(u.root, f)
	return nil
}

func postOrder[T cmp.Ordered](n *Node[T], f func(*Node[T])) {
	if n != nil {
		postOrder(n.l, f)
		postOrder(n.r, f)
		f(n)
	}
}

// Values [Tree.Values]. Uses an explicit stack so a degenerate tree
// doesn't grow the call stack.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
	return vs
}

// Iter returns a closure f acting like an iterator over the values in
// ascending order. Calling f is like calling "Next()": val, valid=f().
// val is meaningful only if valid is true; once valid is false f is
// exhausted. The tree mustn't be modified during the iteration.
// Time: f(): amortized O(1); Space: O(D)
func (u *BSTree[T]) Iter() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (v T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		v, has = cur.v, true
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		return
	}
}
