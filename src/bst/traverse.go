package bst

import (
	"github.com/Nigel2392/go-datastructures/stack"
)

type order int

const (
	inOrder order = iota
	preOrder
	postOrder
)

type visitFrame[T any] struct {
	node    *Node[T]
	visited bool
}

func (n *Node[T]) walk(o order, f func(T)) {
	if n == nil {
		return
	}
	var s = &stack.Stack[visitFrame[T]]{}
	s.Push(visitFrame[T]{node: n})
	for {
		var frame, ok = s.PopOK()
		if !ok {
			return
		}
		if frame.node == nil {
			continue
		}
		if frame.visited {
			f(frame.node.value)
			continue
		}

		// Pushed in reverse, the stack pops them in order.
		switch o {
		case inOrder:
			s.Push(visitFrame[T]{node: frame.node.right})
			s.Push(visitFrame[T]{node: frame.node, visited: true})
			s.Push(visitFrame[T]{node: frame.node.left})
		case preOrder:
			s.Push(visitFrame[T]{node: frame.node.right})
			s.Push(visitFrame[T]{node: frame.node.left})
			s.Push(visitFrame[T]{node: frame.node, visited: true})
		case postOrder:
			s.Push(visitFrame[T]{node: frame.node, visited: true})
			s.Push(visitFrame[T]{node: frame.node.right})
			s.Push(visitFrame[T]{node: frame.node.left})
		}
	}
}

// Traverse the tree in-order, calling f with every value in ascending order.
func (t *Tree[T]) Traverse(f func(T)) {
	t.root.walk(inOrder, f)
}

// PreOrder calls f with every value, parents before their children.
func (t *Tree[T]) PreOrder(f func(T)) {
	t.root.walk(preOrder, f)
}

// PostOrder calls f with every value, children before their parents.
func (t *Tree[T]) PostOrder(f func(T)) {
	t.root.walk(postOrder, f)
}

// Values returns every value in ascending order.
func (t *Tree[T]) Values() []T {
	var values = make([]T, 0, t.length)
	t.Traverse(func(v T) {
		values = append(values, v)
	})
	return values
}
