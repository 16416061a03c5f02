package Trees

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Tree[int] = (*BSTree[int])(nil)

func collect[T cmp.Ordered](t *testing.T, walk func(func(*Node[T])) error) []T {
	t.Helper()
	var vs []T
	require.NoError(t, walk(func(n *Node[T]) {
		vs = append(vs, n.Value())
	}))
	return vs
}

// sevenTree is
//
//	    50
//	  30  70
//	20 40 60 80
func sevenTree() *BSTree[int] {
	return New(50, 30, 70, 20, 40, 60, 80)
}

func TestBSTree_NewDedupSort(t *testing.T) {
	input := []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324}
	orig := append([]int(nil), input...)
	tree := New(input...)

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9, 23, 67, 324, 6345}, tree.Values())
	assert.Equal(t, uint(11), tree.Size())
	require.NotNil(t, tree.Root())
	assert.Equal(t, 8, tree.Root().Value())
	assert.Equal(t, orig, input, "input slice was modified")
	assert.False(t, tree.Corrupt())
}

func TestBSTree_NewShape(t *testing.T) {
	tree := sevenTree()
	root := tree.Root()

	assert.Equal(t, 50, root.Value())
	assert.Equal(t, 30, root.Left().Value())
	assert.Equal(t, 70, root.Right().Value())
	assert.Equal(t, 20, root.Left().Left().Value())
	assert.Equal(t, 40, root.Left().Right().Value())
	assert.Equal(t, 60, root.Right().Left().Value())
	assert.Equal(t, 80, root.Right().Right().Value())
}

func TestBSTree_NewDuplicatesOnly(t *testing.T) {
	tree := New(5, 3, 7, 3, 5, 8, 5)
	assert.Equal(t, []int{3, 5, 7, 8}, tree.Values())
}

func TestBSTree_NewEmpty(t *testing.T) {
	tree := New[int]()
	assert.Nil(t, tree.Root())
	assert.Equal(t, uint(0), tree.Size())

	var zero BSTree[string]
	assert.Nil(t, zero.Root())
	assert.True(t, zero.Insert("a"))
	assert.Equal(t, []string{"a"}, zero.Values())
}

func TestBSTree_NewMidpoint(t *testing.T) {
	for n := 1; n < 64; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i * 3
		}
		tree := New(s...)
		assert.Equal(t, s[n/2], tree.Root().Value(), "root of %d values", n)
		assert.Equal(t, floorLog2(n), tree.TreeHeight(), "height of %d values", n)
		assert.True(t, tree.IsBalanced())
	}
}

func floorLog2(n int) int {
	h := -1
	for ; n > 0; n >>= 1 {
		h++
	}
	return h
}

func TestBSTree_FromSorted(t *testing.T) {
	tree := FromSorted([]string{"a", "b", "c", "d"}, true)
	assert.Equal(t, "c", tree.Root().Value())
	assert.Equal(t, uint(4), tree.Size())
	assert.Equal(t, []string{"a", "b", "c", "d"}, tree.Values())

	assert.Equal(t, []int{1, 2, 3}, FromSorted([]int{1, 2, 3}, false).Values())
}

func TestBSTree_FromSortedUnsafeInput(t *testing.T) {
	assert.PanicsWithValue(t, InvalidSliceError{Left: 3, Mid: 2, Right: nil}, func() {
		FromSorted([]int{3, 2}, true)
	})
	assert.Panics(t, func() {
		FromSorted([]int{1, 2, 2, 3}, true)
	})
	assert.True(t, FromSorted([]int{3, 2, 1}, false).Corrupt())
}

func TestBSTree_Insert(t *testing.T) {
	tree := sevenTree()

	assert.True(t, tree.Insert(35))
	require.NotNil(t, tree.Find(35))
	assert.Equal(t, 40, tree.Root().Left().Right().Value())
	assert.Equal(t, 35, tree.Root().Left().Right().Left().Value())
	assert.Equal(t, uint(8), tree.Size())

	assert.True(t, tree.Insert(25))
	assert.Equal(t, 25, tree.Root().Left().Left().Right().Value())
	assert.False(t, tree.Corrupt())
}

func TestBSTree_InsertDuplicate(t *testing.T) {
	tree := sevenTree()
	before := tree.Values()

	for _, v := range before {
		assert.False(t, tree.Insert(v))
	}
	assert.Equal(t, uint(7), tree.Size())
	assert.Equal(t, before, tree.Values())
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, collect(t, tree.LevelOrder))
}

func TestBSTree_DeleteLeaf(t *testing.T) {
	tree := sevenTree()

	assert.True(t, tree.Delete(20))
	assert.Nil(t, tree.Find(20))
	assert.Nil(t, tree.Root().Left().Left())
	assert.Equal(t, 40, tree.Root().Left().Right().Value())
	assert.Equal(t, uint(6), tree.Size())
}

func TestBSTree_DeleteOneChild(t *testing.T) {
	tree := sevenTree()
	tree.Insert(35)

	assert.True(t, tree.Delete(40))
	assert.Nil(t, tree.Find(40))
	assert.Equal(t, 35, tree.Root().Left().Right().Value())
	assert.Nil(t, tree.Root().Left().Right().Left())
	assert.False(t, tree.Corrupt())
}

func TestBSTree_DeleteTwoChildren(t *testing.T) {
	tree := sevenTree()

	assert.True(t, tree.Delete(30))
	assert.Nil(t, tree.Find(30))
	left := tree.Root().Left()
	assert.Equal(t, 40, left.Value())
	assert.Equal(t, 20, left.Left().Value())
	assert.Nil(t, left.Right())
	assert.Equal(t, []int{20, 40, 50, 60, 70, 80}, tree.Values())
}

func TestBSTree_DeleteTwoChildrenDeepSuccessor(t *testing.T) {
	tree := sevenTree()
	tree.Insert(55)
	tree.Insert(57)

	assert.True(t, tree.Delete(50))
	assert.Equal(t, 55, tree.Root().Value())
	assert.Equal(t, 57, tree.Root().Right().Left().Left().Value())
	assert.Equal(t, []int{20, 30, 40, 55, 57, 60, 70, 80}, tree.Values())
	assert.False(t, tree.Corrupt())
}

func TestBSTree_DeleteRoot(t *testing.T) {
	tree := New(1)
	assert.True(t, tree.Delete(1))
	assert.Nil(t, tree.Root())
	assert.False(t, tree.Delete(1))
	assert.Equal(t, uint(0), tree.Size())
}

func TestBSTree_DeleteAll(t *testing.T) {
	tree := sevenTree()
	for tree.Root() != nil {
		assert.True(t, tree.Delete(tree.Root().Value()))
		assert.False(t, tree.Corrupt())
	}
	assert.Equal(t, uint(0), tree.Size())
}

func TestBSTree_DeleteNotExisting(t *testing.T) {
	tree := sevenTree()
	before := collect(t, tree.PreOrder)

	assert.False(t, tree.Delete(999))
	assert.False(t, tree.Delete(45))
	assert.Equal(t, uint(7), tree.Size())
	assert.Equal(t, before, collect(t, tree.PreOrder))

	empty := New[int]()
	assert.False(t, empty.Delete(1))
}

func TestBSTree_Find(t *testing.T) {
	tree := sevenTree()

	n := tree.Find(70)
	require.NotNil(t, n)
	assert.Equal(t, 70, n.Value())
	assert.Same(t, tree.Root().Right(), n)
	assert.Nil(t, tree.Find(65))
	assert.Nil(t, New[int]().Find(0))
	assert.True(t, tree.Has(20))
	assert.False(t, tree.Has(21))
}

func TestBSTree_MinMax(t *testing.T) {
	tree := sevenTree()

	v, ok := tree.Minimum()
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	v, ok = tree.Maximum()
	assert.True(t, ok)
	assert.Equal(t, 80, v)

	empty := New[float64]()
	_, ok = empty.Minimum()
	assert.False(t, ok)
	_, ok = empty.Maximum()
	assert.False(t, ok)
}

func TestBSTree_PredecessorSuccessor(t *testing.T) {
	tree := sevenTree()

	cases := []struct {
		v          int
		pred, succ int
		hasP, hasS bool
	}{
		{50, 40, 60, true, true},
		{20, 0, 30, false, true},
		{80, 70, 0, true, false},
		{45, 40, 50, true, true},
		{10, 0, 20, false, true},
		{90, 80, 0, true, false},
	}
	for _, c := range cases {
		p, ok := tree.Predecessor(c.v)
		assert.Equal(t, c.hasP, ok, "predecessor of %d", c.v)
		assert.Equal(t, c.pred, p, "predecessor of %d", c.v)
		s, ok := tree.Successor(c.v)
		assert.Equal(t, c.hasS, ok, "successor of %d", c.v)
		assert.Equal(t, c.succ, s, "successor of %d", c.v)
	}
}

func TestBSTree_Corrupt(t *testing.T) {
	tree := sevenTree()
	assert.False(t, tree.Corrupt())

	// 55 sits in the left subtree of the root 50.
	tree.Root().Left().Right().v = 55
	assert.True(t, tree.Corrupt())
}
