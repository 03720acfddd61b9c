// Package container holds what the stack and queue packages share:
// the growth policy, the closed set of error kinds, the text token
// grammar and the Container interface both types satisfy.
//
// # Text grammar
//
// Decoding reads an unsigned element count followed by that many
// whitespace-separated values. Encoding writes the live elements in
// logical order as "[a, b, c]".
//
// # Concurrency
//
// Nothing here is safe for concurrent use. A container is owned by
// one goroutine at a time.
package container

import (
	"fmt"
	"io"
	"iter"
)

// InitialCapacity is the capacity a zero-capacity container grows to
// on its first insertion.
const InitialCapacity = 10

// Grow returns the capacity a full container of the given capacity
// grows to: InitialCapacity from zero, otherwise double.
func Grow(capacity int) int {
	if capacity == 0 {
		return InitialCapacity
	}
	return capacity * 2
}

// Container is the read and resize surface shared by Stack and Queue.
//
// Insertion and removal are not part of it: a stack pushes and pops,
// a queue enqueues and dequeues.
type Container[T any] interface {
	// Len returns the number of live elements.
	Len() int

	// Cap returns the number of allocated slots.
	Cap() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// IsFull reports whether Len() == Cap().
	// A zero-capacity container is both empty and full.
	IsFull() bool

	// SetCapacity reallocates to exactly n slots, keeping the live
	// elements in logical order. Returns ErrInvalidArgument if n < Len().
	SetCapacity(n int) error

	// At returns a copy of the element at logical index i.
	// Returns ErrIndexOutOfRange if i is outside [0, Len()).
	At(i int) (T, error)

	// All yields the live elements in logical order.
	All() iter.Seq[T]

	// Load replaces the contents with values decoded from r.
	Load(r io.Reader) error

	io.WriterTo
	fmt.Stringer
}
