package bst

import (
	"github.com/pkg/errors"
)

type errorType int

const (
	ErrNotError errorType = iota
	ErrInvalidArgument
	ErrNotFound
	ErrRootHasNoParent
	ErrEmptyTree
)

var errMap = map[errorType]string{
	ErrNotError:        "not a valid error",
	ErrInvalidArgument: "invalid argument",
	ErrNotFound:        "value not found",
	ErrRootHasNoParent: "root has no parent",
	ErrEmptyTree:       "tree is empty",
}

func (e errorType) Error() string {
	return errMap[e]
}

func (e errorType) Is(target error) bool {
	t, ok := target.(errorType)
	if !ok {
		return false
	}
	return t == e
}

// Attach the operation and the offending value to one of the tree errors.
//
// The result still matches the base error with errors.Is.
func valueError[T any](op string, base errorType, value T) error {
	return errors.Wrapf(base, "%s %v", op, value)
}

// IsNotFound reports whether err signals a value absent from the tree.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound)
}

// IsEmptyTree reports whether err was caused by querying an empty tree.
func IsEmptyTree(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrEmptyTree)
}
