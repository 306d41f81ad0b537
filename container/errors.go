package container

import "errors"

var (
	// ErrNilElement indicates that a nil element was passed to Queue.Add or
	// Stack.Push. The container is left unchanged.
	ErrNilElement = errors.New("nil element")

	// ErrEmptyStack indicates that Stack.Pop or Stack.Peek was called on an
	// empty stack.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrCapacityExhausted indicates that a container could not grow because
	// neither doubling its capacity nor adding the fixed increment fits in the
	// maximum capacity. The container is left unchanged.
	ErrCapacityExhausted = errors.New("capacity exhausted")
)
