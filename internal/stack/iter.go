package stack

import "iter"

// Iterator walks a Stack from bottom (oldest) to top (newest).
//
// An Iterator borrows its stack. Push, Pop, SetCapacity, Load and Move
// invalidate every outstanding Iterator; calling Done, Value or Next on
// an invalidated Iterator panics.
//
// Two iterators are equal when they belong to the same stack and have
// advanced the same number of steps.
type Iterator[T any] struct {
	s    *Stack[T]
	step int
	gen  uint64
}

// Begin returns an Iterator at the bottom element.
func (s *Stack[T]) Begin() Iterator[T] {
	return Iterator[T]{s: s, gen: s.gen}
}

// End returns the Iterator one step past the top element.
func (s *Stack[T]) End() Iterator[T] {
	return Iterator[T]{s: s, step: s.top, gen: s.gen}
}

func (it *Iterator[T]) check() {
	if it.s == nil {
		panic("stack: use of zero Iterator")
	}
	if it.gen != it.s.gen {
		panic("stack: Iterator used after the stack was modified")
	}
}

// Done reports whether the iterator has moved past the top element.
func (it *Iterator[T]) Done() bool {
	it.check()
	return it.step >= it.s.top
}

// Value returns a copy of the current element.
func (it *Iterator[T]) Value() T {
	it.check()
	if it.step >= it.s.top {
		panic("stack: Value on exhausted Iterator")
	}
	return it.s.buf[it.step]
}

// Next advances one step. It stops at End.
func (it *Iterator[T]) Next() {
	it.check()
	if it.step < it.s.top {
		it.step++
	}
}

// Equal reports whether it and other refer to the same stack at the
// same step.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.s == other.s && it.step == other.step
}

// All yields the elements from bottom to top. Mutating the stack from
// inside the loop body panics.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := s.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
