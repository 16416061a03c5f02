package Trees

// Tree represents an ordered set of values kept in a binary search tree.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false bool), in which case x is the zero
// value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any] interface {
	//Insert v to the Tree. Returns false if v is already present, in
	//which case the tree is unchanged.
	Insert(v T) bool
	//Delete v from the Tree. Returns false if v isn't present, in which
	//case the tree is unchanged.
	Delete(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Values of the tree in ascending order.
	Values() []T
	//Corrupt returns whether some node violates the ordering property.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
