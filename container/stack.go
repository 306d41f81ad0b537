package container

import (
	"fmt"
	"iter"

	"github.com/arloliu/go-drones/internal/util"
)

// Stack is a LIFO stack backed by a linear array.
//
// tail is the index one past the top element, which is also the number of
// elements since the bottom of the stack is always at index 0.
//
// The zero value is not usable; create stacks with NewStack.
type Stack[E any] struct {
	items []E // len(items) is the capacity
	tail  int // 0 <= tail < len(items)
	cfg   config
}

// NewStack creates an empty stack with the initial capacity of 8.
func NewStack[E any](opts ...Option) *Stack[E] {
	s := &Stack[E]{cfg: newConfig(opts)}
	s.items = make([]E, s.cfg.policy.Floor)

	return s
}

// Push puts item on top of the stack.
//
// It returns ErrNilElement if item is nil and ErrCapacityExhausted if the
// stack is full and cannot grow. In both cases the stack is unchanged.
func (s *Stack[E]) Push(item E) error {
	if util.IsNil(item) {
		return ErrNilElement
	}

	if s.tail == s.Capacity()-1 {
		if err := s.grow(); err != nil {
			return err
		}
	}

	s.items[s.tail] = item
	s.tail++

	return nil
}

// Pop removes and returns the top of the stack.
// It returns ErrEmptyStack if the stack is empty.
func (s *Stack[E]) Pop() (E, error) {
	var zero E
	if s.IsEmpty() {
		return zero, ErrEmptyStack
	}

	item := s.items[s.tail-1]
	s.items[s.tail-1] = zero
	s.tail--

	if next, ok := s.cfg.policy.Shrink(s.Capacity(), s.Size()); ok {
		s.resize(next)
	}

	return item, nil
}

// Peek returns the top of the stack without removing it.
// It returns ErrEmptyStack if the stack is empty.
func (s *Stack[E]) Peek() (E, error) {
	if s.IsEmpty() {
		var zero E
		return zero, ErrEmptyStack
	}

	return s.items[s.tail-1], nil
}

// Size returns the number of elements in the stack.
func (s *Stack[E]) Size() int {
	return s.tail
}

// IsEmpty returns true if the stack is empty, false otherwise.
func (s *Stack[E]) IsEmpty() bool {
	return s.tail == 0
}

// Capacity returns the length of the backing array.
func (s *Stack[E]) Capacity() int {
	return len(s.items)
}

// All returns an iterator over the elements from top to bottom, the order
// Pop would return them in. The stack must not be modified during iteration.
func (s *Stack[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := s.tail - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Reset empties the stack and restores its initial capacity.
func (s *Stack[E]) Reset() {
	s.items = make([]E, s.cfg.policy.Floor)
	s.tail = 0
}

func (s *Stack[E]) grow() error {
	next, err := s.cfg.policy.Grow(s.Capacity())
	if err != nil {
		return fmt.Errorf("%w: stack of capacity %d: %w", ErrCapacityExhausted, s.Capacity(), err)
	}
	s.resize(next)

	return nil
}

func (s *Stack[E]) resize(n int) {
	from := len(s.items)
	s.items = util.CloneSlice(s.items[:s.tail], n)
	s.cfg.logResize("stack", from, n, s.tail)
}
