package queue

import (
	"io"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/some-go-containers/internal/container"
)

// Load replaces the queue contents with values read from r: an element
// count n, then n values enqueued in the order read. If n exceeds Cap
// the buffer grows to exactly n first.
//
// The whole input is read before the queue is touched, so on error the
// queue is unchanged.
func (q *Queue[T]) Load(r io.Reader) error {
	vals, err := container.Decode[T](r)
	if err != nil {
		return errors.Wrap(err, "queue.Load")
	}

	q.head, q.tail, q.count = 0, 0, 0
	q.gen++
	if len(vals) > len(q.buf) {
		q.realloc(len(vals))
	}
	for _, v := range vals {
		q.Enqueue(v)
	}
	return nil
}

// WriteTo writes the queue front to rear as "[a, b, c]".
func (q *Queue[T]) WriteTo(w io.Writer) (int64, error) {
	return container.Encode(w, q.count, q.at)
}

// String returns the same text WriteTo writes.
func (q *Queue[T]) String() string {
	return string(container.Format(q.count, q.at))
}

func (q *Queue[T]) at(i int) T { return q.buf[q.slot(i)] }
