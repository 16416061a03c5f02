package Trees

import "fmt"

// InvalidArgumentError is returned by the traversals when they are called
// without a visitor. Op names the traversal.
type InvalidArgumentError struct {
	Op string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Trees: %s requires a visitor function", e.Op)
}

// InvalidSliceError is the panic value of FromSorted in safe mode. The
// node value Mid isn't strictly between the values Left and Right of
// its children.
type InvalidSliceError struct {
	Left, Mid, Right any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: slice isn't strictly ascending around %v: left child %v, right child %v", e.Mid, e.Left, e.Right)
}
