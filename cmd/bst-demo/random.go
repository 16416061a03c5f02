package main

import (
	"fmt"
	"io"
	"math/rand"

	Go_Utils "github.com/g-m-twostay/bst-utils"
	"github.com/g-m-twostay/bst-utils/Trees"
	"github.com/sirupsen/logrus"
)

// runRandom builds a tree from c.Size random values below c.Max, pushes
// c.Extra values above c.Max into it and rebalances it.
func runRandom(w io.Writer, log *logrus.Logger, c config) error {
	r := rand.New(rand.NewSource(c.Seed))
	values := Go_Utils.RandomArray(r, c.Size, c.Max)
	fmt.Fprintln(w, "Random values:", values)

	t := Trees.New(values...)
	log.WithFields(logrus.Fields{"seed": c.Seed, "values": len(values), "size": t.Size()}).Info("built tree")
	printTree(w, "Built tree", t)
	if err := printWalks(w, t); err != nil {
		return err
	}

	extra := Go_Utils.RandomArrayAbove(r, c.Extra, c.Max, c.Max)
	for _, v := range extra {
		inserted := t.Insert(v)
		log.WithFields(logrus.Fields{"value": v, "inserted": inserted}).Debug("insert")
	}
	printTree(w, fmt.Sprintf("\nAfter inserting %v", extra), t)
	log.WithFields(logrus.Fields{"size": t.Size(), "balanced": t.IsBalanced()}).Info("unbalanced tree")

	t.Rebalance()
	printTree(w, "\nAfter rebalancing", t)
	if !t.IsBalanced() {
		return fmt.Errorf("tree of %d values is unbalanced after Rebalance", t.Size())
	}
	log.WithField("height", t.TreeHeight()).Info("rebalanced tree")
	return printWalks(w, t)
}
