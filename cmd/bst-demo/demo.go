package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	"github.com/g-m-twostay/bst-utils/Trees"
	"github.com/sirupsen/logrus"
)

var demoInput = []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324}

func runDemo(w io.Writer, log *logrus.Logger) error {
	t := Trees.New(demoInput...)
	log.WithFields(logrus.Fields{"input": len(demoInput), "size": t.Size()}).Info("built tree")
	printTree(w, "Original tree", t)
	fmt.Fprintln(w, "Sorted without duplicates:", t.Values())
	fmt.Fprintln(w, "Root value:", t.Root().Value())

	t.Insert(6)
	printTree(w, "\nAfter inserting 6", t)
	for _, v := range []int{1, 8, 67} {
		kind := deletionCase(t.Find(v))
		deleted := t.Delete(v)
		log.WithFields(logrus.Fields{"value": v, "case": kind, "deleted": deleted}).Debug("delete")
		printTree(w, fmt.Sprintf("\nAfter deleting %s node %d", kind, v), t)
	}

	if n := t.Find(9); n != nil {
		fmt.Fprintln(w, "\nFound:", n.Value())
	} else {
		fmt.Fprintln(w, "\nNot found: 9")
	}

	fmt.Fprintln(w)
	if err := printWalks(w, t); err != nil {
		return err
	}
	var invalid *Trees.InvalidArgumentError
	if err := t.InOrder(nil); errors.As(err, &invalid) {
		fmt.Fprintln(w, "\nError caught:", err)
	} else {
		return fmt.Errorf("in-order walk without a visitor returned %v", err)
	}

	fmt.Fprintln(w, "Is balanced:", t.IsBalanced())
	root := t.Root().Value()
	for _, v := range []int{root, 67} {
		h, hok := t.Height(v)
		d, dok := t.Depth(v)
		fmt.Fprintf(w, "Height of %d: %s, depth of %d: %s\n", v, optional(h, hok), v, optional(d, dok))
	}

	for _, v := range []int{100, 200, 300, 400} {
		t.Insert(v)
	}
	printTree(w, "\nTree after inserting 100 200 300 400", t)
	log.WithField("balanced", t.IsBalanced()).Info("unbalanced tree")

	t.Rebalance()
	printTree(w, "\nTree after rebalancing", t)
	log.WithField("balanced", t.IsBalanced()).Info("rebalanced tree")
	return nil
}

func deletionCase[T cmp.Ordered](n *Trees.Node[T]) string {
	switch {
	case n == nil:
		return "absent"
	case n.Left() == nil && n.Right() == nil:
		return "leaf"
	case n.Left() == nil || n.Right() == nil:
		return "one child"
	}
	return "two children"
}

// optional formats an (int, bool) result, printing "none" when absent.
func optional(v int, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}
