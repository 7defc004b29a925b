package bst

import (
	"github.com/Nigel2392/go-datastructures/stack"
)

type depthFrame[T any] struct {
	node  *Node[T]
	depth int
}

// Walk the subtree rooted at n depth first, without recursion.
//
// Degenerate trees are as deep as they are long, so the goroutine stack is not used.
func (n *Node[T]) walkDepths(f func(node *Node[T], depth int)) {
	if n == nil {
		return
	}
	var s = &stack.Stack[depthFrame[T]]{}
	s.Push(depthFrame[T]{node: n})
	for {
		var frame, ok = s.PopOK()
		if !ok {
			return
		}
		f(frame.node, frame.depth)
		if frame.node.right != nil {
			s.Push(depthFrame[T]{node: frame.node.right, depth: frame.depth + 1})
		}
		if frame.node.left != nil {
			s.Push(depthFrame[T]{node: frame.node.left, depth: frame.depth + 1})
		}
	}
}

// The depth of the shallowest node missing at least one child.
func (n *Node[T]) minHeight() int {
	var height = -1
	n.walkDepths(func(node *Node[T], depth int) {
		if node.left != nil && node.right != nil {
			return
		}
		if height < 0 || depth < height {
			height = depth
		}
	})
	return height
}

// The depth of the deepest node.
func (n *Node[T]) maxHeight() int {
	var height = -1
	n.walkDepths(func(_ *Node[T], depth int) {
		if depth > height {
			height = depth
		}
	})
	return height
}

// FindMinHeight returns the number of edges from node to the nearest node with a missing child.
//
// An empty subtree has a height of -1.
func (t *Tree[T]) FindMinHeight(node *Node[T]) int {
	return node.minHeight()
}

// FindMaxHeight returns the number of edges from node to its farthest leaf.
//
// An empty subtree has a height of -1.
func (t *Tree[T]) FindMaxHeight(node *Node[T]) int {
	return node.maxHeight()
}

// MinHeight returns the minimum height of the whole tree.
func (t *Tree[T]) MinHeight() int {
	return t.root.minHeight()
}

// MaxHeight returns the maximum height of the whole tree.
func (t *Tree[T]) MaxHeight() int {
	return t.root.maxHeight()
}

// IsBalanced reports whether the minimum and maximum heights differ by at most one.
func (t *Tree[T]) IsBalanced() bool {
	return t.MaxHeight()-t.MinHeight() <= 1
}
