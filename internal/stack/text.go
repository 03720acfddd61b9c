package stack

import (
	"io"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/some-go-containers/internal/container"
)

// Load replaces the stack contents with values read from r: an element
// count n, then n values pushed in the order read. If n exceeds Cap the
// buffer grows to exactly n first.
//
// The whole input is read before the stack is touched, so on error the
// stack is unchanged.
func (s *Stack[T]) Load(r io.Reader) error {
	vals, err := container.Decode[T](r)
	if err != nil {
		return errors.Wrap(err, "stack.Load")
	}

	s.top = 0
	s.gen++
	if len(vals) > len(s.buf) {
		s.realloc(len(vals))
	}
	for _, v := range vals {
		s.Push(v)
	}
	return nil
}

// WriteTo writes the stack bottom to top as "[a, b, c]".
func (s *Stack[T]) WriteTo(w io.Writer) (int64, error) {
	return container.Encode(w, s.top, s.at)
}

// String returns the same text WriteTo writes.
func (s *Stack[T]) String() string {
	return string(container.Format(s.top, s.at))
}

func (s *Stack[T]) at(i int) T { return s.buf[i] }
