package Trees

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Fprint draws the subtree rooting at n to w sideways, one node per line:
// the right subtree above a node, the left subtree below it, connected by
// box drawing branches. Nothing is written for a nil n.
func Fprint[T cmp.Ordered](w io.Writer, n *Node[T]) error {
	return fprint(w, n, "", true)
}

func fprint[T cmp.Ordered](w io.Writer, n *Node[T], prefix string, isLeft bool) error {
	if n == nil {
		return nil
	}
	above, below, branch := "│   ", "    ", "└── "
	if !isLeft {
		above, below, branch = "    ", "│   ", "┌── "
	}
	if err := fprint(w, n.r, prefix+above, false); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, branch, n.v); err != nil {
		return err
	}
	return fprint(w, n.l, prefix+below, true)
}

// String draws the tree as Fprint does.
func (u *BSTree[T]) String() string {
	var b strings.Builder
	_ = Fprint(&b, u.root)
	return b.String()
}
