package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/g-m-twostay/bst-utils/Trees"
)

func printTree[T cmp.Ordered](w io.Writer, title string, t *Trees.BSTree[T]) {
	fmt.Fprintf(w, "%s (size %d, height %d, balanced %t):\n", title, t.Size(), t.TreeHeight(), t.IsBalanced())
	if t.Root() == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	fmt.Fprint(w, t.String())
}

// printWalks prints the four traversals of t, one per line.
func printWalks[T cmp.Ordered](w io.Writer, t *Trees.BSTree[T]) error {
	walks := []struct {
		name string
		walk func(func(*Trees.Node[T])) error
	}{
		{"level order", t.LevelOrder},
		{"in-order", t.InOrder},
		{"pre-order", t.PreOrder},
		{"post-order", t.PostOrder},
	}
	for _, x := range walks {
		var vs []T
		if err := x.walk(func(n *Trees.Node[T]) { vs = append(vs, n.Value()) }); err != nil {
			return fmt.Errorf("%s: %w", x.name, err)
		}
		fmt.Fprintf(w, "%-12s %v\n", x.name+":", vs)
	}
	return nil
}
