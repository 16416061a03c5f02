package Trees

import (
	"cmp"
	"slices"
)

// BSTree is a binary search tree with no repeated values. It doesn't
// balance itself: Insert and Delete keep the ordering property only, and
// the height is restored to floor(log2(n)) on an explicit call to
// Rebalance.
// The zero value is an empty tree ready to use. A BSTree must not be
// used by more than one goroutine at a time.
type BSTree[T cmp.Ordered] struct {
	root *Node[T]
	sz   uint
}

// New builds a BSTree holding values. values may be in any order and may
// contain duplicates; it isn't modified. The result has minimal height.
// Time: O(n log n)
func New[T cmp.Ordered](values ...T) *BSTree[T] {
	s := slices.Clone(values)
	slices.Sort(s)
	s = slices.Compact(s)
	return &BSTree[T]{buildTree(s), uint(len(s))}
}

// FromSorted builds a BSTree using the given sorted slice. The slice must
// be sorted in ascending order and mustn't contain duplicate elements.
// If safe==true, this function checks the ordering at every node and panics
// with InvalidSliceError when it's broken. Otherwise it's up to the caller
// to ensure the conditions are met (otherwise the tree will be corrupt).
// Time: O(n)
func FromSorted[T cmp.Ordered](sli []T, safe bool) *BSTree[T] {
	if safe {
		return &BSTree[T]{buildChecked(sli), uint(len(sli))}
	}
	return &BSTree[T]{buildTree(sli), uint(len(sli))}
}

// buildTree recursively picks the lower middle of s as the root of the
// subtree and builds the children from the two halves around it.
func buildTree[T cmp.Ordered](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &Node[T]{s[mid], buildTree(s[:mid]), buildTree(s[mid+1:])}
}

func buildChecked[T cmp.Ordered](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	l, r := buildChecked(s[:mid]), buildChecked(s[mid+1:])
	if (l == nil || rightmost(l).v < s[mid]) && (r == nil || s[mid] < leftmost(r).v) {
		return &Node[T]{s[mid], l, r}
	}
	e := InvalidSliceError{Mid: s[mid]}
	if l != nil {
		e.Left = l.v
	}
	if r != nil {
		e.Right = r.v
	}
	panic(e)
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// insert v to the subtree rooting at n recursively and return the new
// root of that subtree, which is n unless n is nil.
func insert[T cmp.Ordered](n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return &Node[T]{v: v}, true
	}
	inserted := false
	if v < n.v {
		n.l, inserted = insert(n.l, v)
	} else if v > n.v {
		n.r, inserted = insert(n.r, v)
	}
	return n, inserted
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	var inserted bool
	if u.root, inserted = insert(u.root, v); inserted {
		u.sz++
	}
	return inserted
}

// remove v from the subtree rooting at n recursively and return the new
// root of that subtree. A node with two children takes the value of its
// in-order successor, which is then removed from the right subtree; the
// successor has no left child so that second removal splices it out.
func remove[T cmp.Ordered](n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	deleted := false
	if v < n.v {
		n.l, deleted = remove(n.l, v)
	} else if v > n.v {
		n.r, deleted = remove(n.r, v)
	} else {
		if n.l == nil {
			return n.r, true
		} else if n.r == nil {
			return n.l, true
		}
		n.v = leftmost(n.r).v
		n.r, deleted = remove(n.r, n.v)
	}
	return n, deleted
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	var deleted bool
	if u.root, deleted = remove(u.root, v); deleted {
		u.sz--
	}
	return deleted
}

// Find the node holding v. Returns nil if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// corrupt checks that every value in the subtree rooting at n lies
// strictly between lo and hi, where nil means unbounded.
func corrupt[T cmp.Ordered](n *Node[T], lo, hi *T) bool {
	if n == nil {
		return false
	}
	if (lo != nil && n.v <= *lo) || (hi != nil && n.v >= *hi) {
		return true
	}
	return corrupt(n.l, lo, &n.v) || corrupt(n.r, &n.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	return corrupt(u.root, nil, nil)
}
