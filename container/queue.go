package container

import (
	"fmt"
	"iter"

	"github.com/arloliu/go-drones/internal/util"
)

// Queue is a FIFO queue backed by a circular buffer.
//
// head is the index of the front element and tail is the index the next
// element is written to. One slot is always left free, so head == tail only
// ever means the queue is empty.
//
// The zero value is not usable; create queues with NewQueue.
type Queue[E any] struct {
	ring []E // len(ring) is the capacity
	head int // 0 <= head < len(ring)
	tail int // 0 <= tail < len(ring)
	cfg  config
}

// NewQueue creates an empty queue with the initial capacity of 8.
func NewQueue[E any](opts ...Option) *Queue[E] {
	q := &Queue[E]{cfg: newConfig(opts)}
	q.ring = make([]E, q.cfg.policy.Floor)

	return q
}

// Add appends item to the back of the queue.
//
// It returns ErrNilElement if item is nil and ErrCapacityExhausted if the
// queue is full and cannot grow. In both cases the queue is unchanged.
func (q *Queue[E]) Add(item E) error {
	if util.IsNil(item) {
		return ErrNilElement
	}

	if q.Size() == q.Capacity()-1 {
		if err := q.grow(); err != nil {
			return err
		}
	}

	q.ring[q.tail] = item
	q.tail = (q.tail + 1) % q.Capacity()

	return nil
}

// Peek returns the front of the queue without removing it.
// It returns false if the queue is empty.
func (q *Queue[E]) Peek() (E, bool) {
	if q.IsEmpty() {
		var zero E
		return zero, false
	}

	return q.ring[q.head], true
}

// Remove removes and returns the front of the queue.
// It returns false if the queue is empty.
func (q *Queue[E]) Remove() (E, bool) {
	var zero E
	if q.IsEmpty() {
		return zero, false
	}

	item := q.ring[q.head]
	q.ring[q.head] = zero
	q.head = (q.head + 1) % q.Capacity()

	if next, ok := q.cfg.policy.Shrink(q.Capacity(), q.Size()); ok {
		q.resize(next)
	}

	return item, true
}

// Size returns the number of elements in the queue.
func (q *Queue[E]) Size() int {
	if q.tail < q.head {
		return q.Capacity() + q.tail - q.head
	}

	return q.tail - q.head
}

// IsEmpty returns true if the queue is empty, false otherwise.
func (q *Queue[E]) IsEmpty() bool {
	return q.head == q.tail
}

// Capacity returns the length of the backing array.
func (q *Queue[E]) Capacity() int {
	return len(q.ring)
}

// All returns an iterator over the elements from front to back.
// The queue must not be modified during iteration.
func (q *Queue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i, n := 0, q.Size(); i < n; i++ {
			if !yield(q.ring[(q.head+i)%len(q.ring)]) {
				return
			}
		}
	}
}

// Reset empties the queue and restores its initial capacity.
func (q *Queue[E]) Reset() {
	q.ring = make([]E, q.cfg.policy.Floor)
	q.head = 0
	q.tail = 0
}

func (q *Queue[E]) grow() error {
	next, err := q.cfg.policy.Grow(q.Capacity())
	if err != nil {
		return fmt.Errorf("%w: queue of capacity %d: %w", ErrCapacityExhausted, q.Capacity(), err)
	}
	q.resize(next)

	return nil
}

// resize replaces the backing array with one of length n, moving the front
// element to index 0.
func (q *Queue[E]) resize(n int) {
	from := len(q.ring)
	ring, size := util.CloneRing(q.ring, q.head, q.tail, n)

	q.ring = ring
	q.head = 0
	q.tail = size
	q.cfg.logResize("queue", from, n, size)
}
