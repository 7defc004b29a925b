package bst

import (
	"fmt"
	"math"
	"strings"
)

// Trees deeper than this are printed without padding, the padding doubles with every level.
const maxPaddedLevels = 6

// Return the tree as a string, one line per level.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return ""
	}

	var height = t.root.maxHeight() + 1
	var levels = make([][]string, height)

	t.root.walkDepths(func(node *Node[T], depth int) {
		levels[depth] = append(levels[depth], fmt.Sprintf("%v", node.value))
	})

	var b strings.Builder
	if height > maxPaddedLevels {
		for _, level := range levels {
			b.WriteString(strings.Join(level, " "))
			b.WriteString("\n")
		}
		return b.String()
	}

	var padding = int(math.Pow(2, float64(height)) - 1)

	for i, level := range levels {
		if i == 0 {
			b.WriteString(strings.Repeat(" ", (padding/2)+1))
		} else {
			b.WriteString(strings.Repeat(" ", padding/2))
		}

		for j, value := range level {
			b.WriteString(value)
			if j != len(level)-1 {
				b.WriteString(strings.Repeat(" ", padding))
			}
		}

		padding /= 2
		b.WriteString("\n")
	}

	return b.String()
}
