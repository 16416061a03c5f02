// Command bst-demo exercises the Trees.BSTree operations and prints the
// tree after each step.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(log *logrus.Logger) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "bst-demo",
		Short:         "Build, mutate, walk and rebalance a binary search tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	v, err := bindConfig(root)
	if err != nil {
		return nil, err
	}
	var c config
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(v)
		if err != nil {
			return err
		}
		c = loaded
		log.SetLevel(c.LogLevel)
		return nil
	}
	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run the fixed walkthrough on [1 7 4 23 8 9 4 3 5 7 9 67 6345 324]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), log)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "random",
		Short: "Build a tree from random values, unbalance it and rebalance it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd.OutOrStdout(), log, c)
		},
	})
	return root, nil
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root, err := newRootCmd(log)
	if err == nil {
		err = root.Execute()
	}
	if err != nil {
		log.WithError(err).Error("bst-demo failed")
		os.Exit(1)
	}
}
