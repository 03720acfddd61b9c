// Package queue provides Queue, a FIFO container over an owned,
// growable ring buffer.
//
// # Ring layout
//
// Live elements occupy count slots of buf starting at head and wrapping
// modulo len(buf); tail is the next free write slot. Dequeue only moves
// head and leaves the old value in place.
//
// Every reallocation (growth on Enqueue, SetCapacity, Clone) copies the
// live elements to the front of a fresh buffer, so afterwards head is 0
// and tail is count modulo the new capacity.
//
// # Safety (IMPORTANT)
//
// Queue is NOT safe for concurrent use. One goroutine owns a Queue at a
// time; hand it to another goroutine with Move.
package queue

import (
	"github.com/randomizedcoder/some-go-containers/internal/container"
)

// Queue is a FIFO queue. The zero value is an empty queue with no
// buffer; it allocates container.InitialCapacity slots on first Enqueue.
type Queue[T any] struct {
	buf   []T
	head  int // oldest element
	tail  int // next free write slot
	count int

	// gen changes on every structural mutation; see Iterator.
	gen uint64
}

var _ container.Container[int] = (*Queue[int])(nil)

// New creates an empty Queue with the given capacity.
// New(0) allocates an empty buffer. It panics if capacity is negative.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{
		buf: make([]T, capacity),
	}
}

// Cap returns the number of allocated slots.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.count }

// Front returns the raw head cursor: the slot Dequeue reads next.
func (q *Queue[T]) Front() int { return q.head }

// Rear returns the raw tail cursor: the slot Enqueue writes next.
func (q *Queue[T]) Rear() int { return q.tail }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// IsFull reports whether the next Enqueue has to grow the buffer.
// A zero-capacity queue is both empty and full.
func (q *Queue[T]) IsFull() bool { return q.count == len(q.buf) }

// SetCapacity moves the live elements, front first, into a new buffer
// of exactly n slots. It returns container.ErrInvalidArgument if n is
// smaller than Len.
func (q *Queue[T]) SetCapacity(n int) error {
	if n < q.count {
		return container.NewError(container.InvalidArgument, "queue.SetCapacity",
			"capacity %d below size %d", n, q.count)
	}
	q.realloc(n)
	return nil
}

// realloc re-linearizes the ring into a new buffer of n slots.
func (q *Queue[T]) realloc(n int) {
	buf := make([]T, n)
	q.linearize(buf)
	q.buf = buf
	q.head = 0
	q.tail = q.count
	if q.tail == n {
		q.tail = 0
	}
	q.gen++
}

// linearize copies the live elements in logical order to dst[0:count].
func (q *Queue[T]) linearize(dst []T) {
	end := min(q.head+q.count, len(q.buf))
	n := copy(dst, q.buf[q.head:end])
	copy(dst[n:], q.buf[:q.count-n])
}

// slot maps logical index i to its buffer index. Requires Cap() > 0.
func (q *Queue[T]) slot(i int) int {
	return (q.head + i) % len(q.buf)
}

// Enqueue adds v at the rear, growing the buffer when full: from zero
// to container.InitialCapacity, otherwise doubling.
func (q *Queue[T]) Enqueue(v T) {
	if q.IsFull() {
		q.realloc(container.Grow(len(q.buf)))
	}
	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++
	q.gen++
}

// Dequeue removes and returns the oldest element.
// It returns container.ErrEmptyContainer if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, container.NewError(container.EmptyContainer, "queue.Dequeue", "")
	}
	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	q.gen++
	return v, nil
}

// At returns a copy of the element at logical index i, where 0 is the
// front (oldest) element. It returns container.ErrIndexOutOfRange
// unless 0 <= i < Len.
func (q *Queue[T]) At(i int) (T, error) {
	if i < 0 || i >= q.count {
		var zero T
		return zero, container.NewError(container.IndexOutOfRange, "queue.At",
			"index %d, size %d", i, q.count)
	}
	return q.buf[q.slot(i)], nil
}

// Clone returns an independent copy with the same capacity and the same
// live elements, re-linearized so the copy's head is 0.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{count: q.count}
	if q.buf != nil {
		c.buf = make([]T, len(q.buf))
		q.linearize(c.buf)
		if q.count < len(c.buf) {
			c.tail = q.count
		}
	}
	return c
}

// Move transfers the buffer and cursors to a new Queue and leaves q
// empty with no buffer and zero capacity. q stays usable.
func (q *Queue[T]) Move() *Queue[T] {
	m := &Queue[T]{buf: q.buf, head: q.head, tail: q.tail, count: q.count}
	q.buf = nil
	q.head, q.tail, q.count = 0, 0, 0
	q.gen++
	return m
}

// Equal reports whether a and b hold the same elements in the same
// logical order. Capacity and cursor positions are ignored.
func Equal[T comparable](a, b *Queue[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Queue[T], eq func(x, y T) bool) bool {
	if a.count != b.count {
		return false
	}
	for i := 0; i < a.count; i++ {
		if !eq(a.buf[a.slot(i)], b.buf[b.slot(i)]) {
			return false
		}
	}
	return true
}
