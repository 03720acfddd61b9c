// Command containers exercises the stack and queue containers.
//
// With no flags it pushes 1, 2, 3 onto a stack and walks a queue
// through enqueue, dequeue and wrap-around, printing each state.
// With -load it decodes a container from stdin ("n v1 ... vn") and
// prints it back.
//
// Usage:
//
//	go run ./cmd/containers
//	echo "3 10 20 30" | go run ./cmd/containers -load -kind queue
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/randomizedcoder/some-go-containers/internal/container"
	"github.com/randomizedcoder/some-go-containers/internal/queue"
	"github.com/randomizedcoder/some-go-containers/internal/stack"
)

func main() {
	load := flag.Bool("load", false, "decode a container from stdin and print it")
	kind := flag.String("kind", "stack", "container kind for -load: stack or queue")
	capacity := flag.Int("cap", 5, "initial capacity")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if *load {
		err = runLoad(os.Stdin, os.Stdout, *kind, *capacity, logger)
	} else {
		err = runDemo(os.Stdout, *capacity, logger)
	}
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if k, ok := container.KindOf(err); ok {
			fields = append(fields, zap.Stringer("kind", k))
		}
		logger.Fatal("containers failed", fields...)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runDemo writes one line per container state to w.
func runDemo(w io.Writer, capacity int, logger *zap.Logger) error {
	s := stack.New[int](capacity)
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	logger.Debug("stack filled", zap.Int("len", s.Len()), zap.Int("cap", s.Cap()))
	fmt.Fprintln(w, s)

	q := queue.New[int](capacity)
	for _, v := range []int{1, 2, 3} {
		q.Enqueue(v)
	}
	fmt.Fprintln(w, q) // [1, 2, 3]

	v, err := q.Dequeue()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v) // 1
	fmt.Fprintln(w, q) // [2, 3]

	q.Enqueue(4)
	logger.Debug("queue after wrap",
		zap.Int("len", q.Len()),
		zap.Int("cap", q.Cap()),
		zap.Int("head", q.Front()),
		zap.Int("tail", q.Rear()))
	fmt.Fprintln(w, q) // [2, 3, 4]
	return nil
}

// runLoad decodes an int container of the given kind from r and writes
// its text form to w.
func runLoad(r io.Reader, w io.Writer, kind string, capacity int, logger *zap.Logger) error {
	var c container.Container[int]
	switch kind {
	case "stack":
		c = stack.New[int](capacity)
	case "queue":
		c = queue.New[int](capacity)
	default:
		return errors.Errorf("unknown container kind %q", kind)
	}

	if err := c.Load(r); err != nil {
		return err
	}
	logger.Debug("loaded",
		zap.String("kind", kind),
		zap.Int("len", c.Len()),
		zap.Int("cap", c.Cap()))

	if _, err := c.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return errors.Wrap(err, "write newline")
}
