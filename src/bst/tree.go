package bst

import (
	"cmp"
	"reflect"

	"github.com/antoniofull/bstree/src/logger"
)

type Equalizer[T any] interface {
	Equals(T) bool
}

type Comparable[T any] interface {
	Equalizer[T]
	Lt(T) bool
	Gt(T) bool
}

// An unbalanced binary search tree.
//
// Every value in the left subtree of a node is strictly less than the node's value,
// every value in the right subtree is strictly greater. Duplicates are never stored.
//
// A tree is not safe for concurrent use.
type Tree[T any] struct {
	root    *Node[T]
	length  int
	compare func(a, b T) int
	equal   func(a, b T) bool
	valid   func(T) bool
	logger  logger.Logger
}

// New returns an empty tree of ordered values.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{
		compare: cmp.Compare[T],
		valid:   isOrderable[T],
	}
}

// NewWithValue returns a tree with a single root node holding value.
func NewWithValue[T cmp.Ordered](value T) *Tree[T] {
	var t = New[T]()
	t.Insert(value)
	return t
}

// NewFunc returns an empty tree ordered by compare.
//
// compare must return a negative number when a < b, a positive number when a > b and zero when they are equal.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if compare == nil {
		panic("bst: nil compare function")
	}
	return &Tree[T]{
		compare: compare,
		valid:   func(T) bool { return true },
	}
}

// NewComparable returns an empty tree for types which know how to compare themselves.
//
// Values which are neither less than, greater than nor equal to a stored value never match it.
// Nil values are rejected as invalid arguments.
func NewComparable[T Comparable[T]]() *Tree[T] {
	return &Tree[T]{
		compare: compareComparable[T],
		equal:   func(a, b T) bool { return a.Equals(b) },
		valid:   isNotNil[T],
	}
}

// SetLogger sets the logger mutations are reported to.
func (t *Tree[T]) SetLogger(l logger.Logger) *Tree[T] {
	t.logger = l
	return t
}

// SetValidator replaces the check deciding whether a value may be used as an argument.
//
// Values failing the check are never inserted and never found.
func (t *Tree[T]) SetValidator(valid func(T) bool) *Tree[T] {
	if valid == nil {
		valid = func(T) bool { return true }
	}
	t.valid = valid
	return t
}

// Insert a value into the tree.
//
// Returns the tree and true when the value was inserted.
// When the value is already present, or invalid, nothing changes and nil, false is returned.
func (t *Tree[T]) Insert(value T) (tree *Tree[T], inserted bool) {
	if !t.valid(value) {
		if t.logger != nil {
			t.logger.Warningf("refusing to insert invalid value %v\n", value)
		}
		return nil, false
	}

	var node = newNode(value)
	if t.root == nil {
		t.root = node
		t.length++
		if t.logger != nil {
			t.logger.Debugf("inserted %v as root\n", value)
		}
		return t, true
	}

	var current = t.root
	for {
		var c = t.compare(value, current.value)
		if c == 0 {
			if !t.equals(value, current.value) {
				if t.logger != nil {
					t.logger.Warningf("%v cannot be ordered against %v, skipping insert\n", value, current.value)
				}
				return nil, false
			}
			if t.logger != nil {
				t.logger.Debugf("%v already present, skipping insert\n", value)
			}
			return nil, false
		}
		if c < 0 {
			if current.left == nil {
				current.left = node
				break
			}
			current = current.left
		} else {
			if current.right == nil {
				current.right = node
				break
			}
			current = current.right
		}
	}

	t.length++
	if t.logger != nil {
		t.logger.Debugf("inserted %v under %v\n", value, current.value)
	}
	return t, true
}

// Find returns the node holding value.
func (t *Tree[T]) Find(value T) (*Node[T], error) {
	if !t.valid(value) {
		return nil, valueError("find", ErrInvalidArgument, value)
	}
	if t.root == nil {
		return nil, valueError("find", ErrNotFound, value)
	}
	var node = t.root.search(value, t.compare, t.equals)
	if node == nil {
		return nil, valueError("find", ErrNotFound, value)
	}
	return node, nil
}

// Contains reports whether value is stored in the tree.
func (t *Tree[T]) Contains(value T) bool {
	var _, err = t.Find(value)
	return err == nil
}

// FindParentNode returns the parent of the node holding value.
//
// The root has no parent, asking for it returns ErrRootHasNoParent rather than ErrNotFound.
func (t *Tree[T]) FindParentNode(value T) (*Node[T], error) {
	if !t.valid(value) {
		return nil, valueError("find parent of", ErrInvalidArgument, value)
	}

	var (
		parent  *Node[T]
		current = t.root
	)
	for current != nil {
		switch c := t.compare(value, current.value); {
		case c < 0:
			parent = current
			current = current.left
		case c > 0:
			parent = current
			current = current.right
		default:
			if !t.equals(value, current.value) {
				return nil, valueError("find parent of", ErrNotFound, value)
			}
			if parent == nil {
				return nil, valueError("find parent of", ErrRootHasNoParent, value)
			}
			return parent, nil
		}
	}
	return nil, valueError("find parent of", ErrNotFound, value)
}

// FindMin returns the node holding the smallest value.
func (t *Tree[T]) FindMin() (*Node[T], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	return t.root.findMin(), nil
}

// FindMax returns the node holding the largest value.
func (t *Tree[T]) FindMax() (*Node[T], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	return t.root.findMax(), nil
}

// Remove a value from the tree.
//
// Removing a value which is not present is a no-op. The tree is returned for chaining.
func (t *Tree[T]) Remove(value T) *Tree[T] {
	t.Delete(value)
	return t
}

// Delete a value from the tree, reporting whether a node was removed.
func (t *Tree[T]) Delete(value T) (deleted bool) {
	if t.root == nil || !t.valid(value) {
		return false
	}
	t.root, deleted = t.root.remove(value, t.compare, t.equals)
	if deleted {
		t.length--
		if t.logger != nil {
			t.logger.Debugf("removed %v\n", value)
		}
	}
	return deleted
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear removes every value from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.length = 0
	if t.logger != nil {
		t.logger.Debug("cleared tree")
	}
}

// Trees without an equality check treat a zero comparison as a match.
func (t *Tree[T]) equals(a, b T) bool {
	return t.equal == nil || t.equal(a, b)
}

func compareComparable[T Comparable[T]](a, b T) int {
	if a.Lt(b) {
		return -1
	}
	if a.Gt(b) {
		return 1
	}
	return 0
}

// NaN is the only ordered value unequal to itself.
func isOrderable[T cmp.Ordered](value T) bool {
	return value == value
}

func isNotNil[T any](value T) bool {
	var v = reflect.ValueOf(value)
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}
