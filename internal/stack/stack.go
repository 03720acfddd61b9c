// Package stack provides Stack, a LIFO container over an owned,
// growable buffer.
//
// # Layout
//
// A Stack keeps its elements in buf[0:top], oldest first. Slots at and
// above top are stale: Pop moves the cursor and leaves the old value in
// place. Capacity is len(buf) and only changes through growth on Push
// or an explicit SetCapacity; it never shrinks on its own.
//
// # Safety
//
// Stack is NOT safe for concurrent use. One goroutine owns a Stack at a
// time; hand it to another goroutine with Move.
package stack

import (
	"github.com/randomizedcoder/some-go-containers/internal/container"
)

// Stack is a LIFO stack. The zero value is an empty stack with no
// buffer; it allocates container.InitialCapacity slots on first Push.
type Stack[T any] struct {
	buf []T
	top int // live element count and next free write index

	// gen changes on every structural mutation. Iterators record it
	// at creation and refuse to run once it moves.
	gen uint64
}

var _ container.Container[int] = (*Stack[int])(nil)

// New creates an empty Stack with the given capacity.
// New(0) allocates an empty buffer. It panics if capacity is negative.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		buf: make([]T, capacity),
	}
}

// Cap returns the number of allocated slots.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.top }

// Top returns the top cursor: the index the next Push writes to.
// It always equals Len.
func (s *Stack[T]) Top() int { return s.top }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.top == 0 }

// IsFull reports whether the next Push has to grow the buffer.
// A zero-capacity stack is both empty and full.
func (s *Stack[T]) IsFull() bool { return s.top == len(s.buf) }

// SetCapacity reallocates the buffer to exactly n slots, keeping the
// live elements in order. It returns container.ErrInvalidArgument if n
// is smaller than Len.
func (s *Stack[T]) SetCapacity(n int) error {
	if n < s.top {
		return container.NewError(container.InvalidArgument, "stack.SetCapacity",
			"capacity %d below size %d", n, s.top)
	}
	s.realloc(n)
	return nil
}

func (s *Stack[T]) realloc(n int) {
	buf := make([]T, n)
	copy(buf, s.buf[:s.top])
	s.buf = buf
	s.gen++
}

// Push places v on top of the stack, growing the buffer when full:
// from zero to container.InitialCapacity, otherwise doubling.
func (s *Stack[T]) Push(v T) {
	if s.IsFull() {
		s.realloc(container.Grow(len(s.buf)))
	}
	s.buf[s.top] = v
	s.top++
	s.gen++
}

// Pop removes and returns the most recently pushed element.
// It returns container.ErrEmptyContainer if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, container.NewError(container.EmptyContainer, "stack.Pop", "")
	}
	s.top--
	s.gen++
	return s.buf[s.top], nil
}

// At returns a copy of the element at index i, where 0 is the bottom
// (oldest) element. It returns container.ErrIndexOutOfRange unless
// 0 <= i < Len.
func (s *Stack[T]) At(i int) (T, error) {
	if i < 0 || i >= s.top {
		var zero T
		return zero, container.NewError(container.IndexOutOfRange, "stack.At",
			"index %d, size %d", i, s.top)
	}
	return s.buf[i], nil
}

// Clone returns an independent copy with the same capacity and the
// same live elements. Stale slots are not copied.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{top: s.top}
	if s.buf != nil {
		c.buf = make([]T, len(s.buf))
		copy(c.buf, s.buf[:s.top])
	}
	return c
}

// Move transfers the buffer to a new Stack and leaves s empty with no
// buffer and zero capacity. s stays usable.
func (s *Stack[T]) Move() *Stack[T] {
	m := &Stack[T]{buf: s.buf, top: s.top}
	s.buf = nil
	s.top = 0
	s.gen++
	return m
}

// Equal reports whether a and b hold the same elements in the same
// order. Capacity is ignored.
func Equal[T comparable](a, b *Stack[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Stack[T], eq func(x, y T) bool) bool {
	if a.top != b.top {
		return false
	}
	for i := 0; i < a.top; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}
