package queue

import "iter"

// Iterator walks a Queue from front (oldest) to rear (newest),
// following the ring across the end of the buffer.
//
// An Iterator borrows its queue. Enqueue, Dequeue, SetCapacity, Load
// and Move invalidate every outstanding Iterator; calling Done, Value
// or Next on an invalidated Iterator panics.
//
// Two iterators are equal when they belong to the same queue and have
// advanced the same number of steps. Buffer positions are not compared.
type Iterator[T any] struct {
	q    *Queue[T]
	step int
	gen  uint64
}

// Begin returns an Iterator at the front element.
func (q *Queue[T]) Begin() Iterator[T] {
	return Iterator[T]{q: q, gen: q.gen}
}

// End returns the Iterator one step past the rear element.
func (q *Queue[T]) End() Iterator[T] {
	return Iterator[T]{q: q, step: q.count, gen: q.gen}
}

func (it *Iterator[T]) check() {
	if it.q == nil {
		panic("queue: use of zero Iterator")
	}
	if it.gen != it.q.gen {
		panic("queue: Iterator used after the queue was modified")
	}
}

// Done reports whether the iterator has moved past the rear element.
func (it *Iterator[T]) Done() bool {
	it.check()
	return it.step >= it.q.count
}

// Value returns a copy of the current element.
func (it *Iterator[T]) Value() T {
	it.check()
	if it.step >= it.q.count {
		panic("queue: Value on exhausted Iterator")
	}
	return it.q.buf[it.q.slot(it.step)]
}

// Next advances one step. It stops at End.
func (it *Iterator[T]) Next() {
	it.check()
	if it.step < it.q.count {
		it.step++
	}
}

// Equal reports whether it and other refer to the same queue at the
// same step.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.q == other.q && it.step == other.step
}

// All yields the elements from front to rear. Mutating the queue from
// inside the loop body panics.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := q.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
