package bst

// A single node of the tree.
//
// A node exclusively owns its children, links are only ever changed by the tree that owns the node.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node[T]) search(value T, compare func(a, b T) int, equal func(a, b T) bool) *Node[T] {
	var current = n
	for current != nil {
		switch c := compare(value, current.value); {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			if !equal(value, current.value) {
				return nil
			}
			return current
		}
	}
	return nil
}

// Remove value from the subtree rooted at n.
//
// Returns the node that now roots the subtree. A node with two children takes the value
// of its in-order successor, which is then removed from the right subtree.
func (n *Node[T]) remove(value T, compare func(a, b T) int, equal func(a, b T) bool) (newRoot *Node[T], removed bool) {
	if n == nil {
		return nil, false
	}

	if c := compare(value, n.value); c < 0 {
		n.left, removed = n.left.remove(value, compare, equal)
		return n, removed
	} else if c > 0 {
		n.right, removed = n.right.remove(value, compare, equal)
		return n, removed
	}

	if !equal(value, n.value) {
		return n, false
	}

	if n.left == nil && n.right == nil {
		return nil, true
	}
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	var successor = n.right.findMin()
	n.value = successor.value
	n.right, _ = n.right.remove(successor.value, compare, equal)
	return n, true
}

func (n *Node[T]) findMin() *Node[T] {
	current := n
	for current.left != nil {
		current = current.left
	}
	return current
}

func (n *Node[T]) findMax() *Node[T] {
	current := n
	for current.right != nil {
		current = current.right
	}
	return current
}
