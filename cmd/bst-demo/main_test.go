package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	root, err := newRootCmd(log)
	require.NoError(t, err)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "Sorted without duplicates: [1 3 4 5 7 8 9 23 67 324 6345]")
	assert.Contains(t, out, "Root value: 8")
	assert.Contains(t, out, "Found: 9")
	assert.Contains(t, out, "in-order:    [3 4 5 6 7 9 23 324 6345]")
	assert.Contains(t, out, "Error caught: Trees: InOrder requires a visitor function")
	assert.Contains(t, out, "depth of 67: none")
	assert.Contains(t, out, "Tree after rebalancing (size 13, height 3, balanced true)")
}

func TestRandom(t *testing.T) {
	out, err := execute(t, "random", "--seed", "3", "--size", "40", "--max", "50", "--extra", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Random values:")
	assert.Contains(t, out, "After rebalancing")
	assert.Contains(t, out, "balanced true)")

	a, _ := execute(t, "random", "--seed", "3")
	b, _ := execute(t, "random", "--seed", "3")
	assert.Equal(t, a, b)
}

func TestRandomEmpty(t *testing.T) {
	out, err := execute(t, "random", "--size", "0", "--extra", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

func TestRandomEnv(t *testing.T) {
	t.Setenv("BST_SIZE", "3")
	t.Setenv("BST_EXTRA", "0")
	out, err := execute(t, "random")
	require.NoError(t, err)
	assert.Contains(t, out, "Built tree (size ")
	assert.NotContains(t, out, "size 4")
}

func TestBadConfig(t *testing.T) {
	_, err := execute(t, "random", "--max", "0")
	assert.EqualError(t, err, "max must be positive, got 0")

	_, err = execute(t, "random", "--size", "-1")
	assert.Error(t, err)

	_, err = execute(t, "demo", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "demo", "unexpected")
	assert.Error(t, err)
}

func TestDemoDeletionCases(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "After deleting leaf node 1 (size 11,")
	assert.Contains(t, out, "After deleting two children node 8 (size 10,")
	assert.Contains(t, out, "After deleting two children node 67 (size 9,")
}
