package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// maxPrealloc caps the slice preallocated from an untrusted count.
const maxPrealloc = 1 << 16

// Decode reads an element count n followed by n values of T from r.
//
// Values are scanned with fmt.Fscan, so T must be a type fmt can scan
// into (numbers, strings, bools, or a fmt.Scanner). Nothing is returned
// unless all n values were read.
func Decode[T any](r io.Reader) ([]T, error) {
	var n uint
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, errors.Wrap(err, "read element count")
	}

	vals := make([]T, 0, min(n, maxPrealloc))
	for i := uint(0); i < n; i++ {
		var v T
		if _, err := fmt.Fscan(r, &v); err != nil {
			return nil, errors.Wrapf(err, "read element %d of %d", i, n)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Format renders n elements, fetched in logical order by at, as
// "[a, b, c]". Elements use the %v verb.
func Format[T any](n int, at func(i int) T) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, at(i))
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// Encode writes Format(n, at) to w in a single Write.
func Encode[T any](w io.Writer, n int, at func(i int) T) (int64, error) {
	written, err := w.Write(Format(n, at))
	return int64(written), errors.Wrap(err, "write elements")
}
