// Command containerbench times the stack and queue containers against a
// buffered channel and go-lock-free-ring.
//
// Usage:
//
//	go run ./cmd/containerbench -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"
	"go.uber.org/zap"

	"github.com/randomizedcoder/some-go-containers/internal/queue"
	"github.com/randomizedcoder/some-go-containers/internal/stack"
)

// benchInfo is one implementation under test. run performs n
// insert+remove pairs.
type benchInfo struct {
	name string
	run  func(n int) error
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "initial capacity")
	grow := flag.Bool("grow", false, "start the containers at zero capacity")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	capacity := *size
	if *grow {
		capacity = 0
	}

	fmt.Printf("Benchmarking containers (%d iterations, capacity=%d)\n", *iterations, capacity)
	fmt.Printf("Architecture: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println("─────────────────────────────────────────────────")

	benches := []benchInfo{
		{"Channel", func(n int) error { return runChannel(n, *size) }},
		{"Stack", func(n int) error { return runStack(n, capacity) }},
		{"Queue", func(n int) error { return runQueue(n, capacity) }},
		{"LockFreeRing(1)", runLockFreeRing},
	}

	results := make([]time.Duration, len(benches))
	for i, info := range benches {
		start := time.Now()
		if err := info.run(*iterations); err != nil {
			logger.Fatal("benchmark failed", zap.String("impl", info.name), zap.Error(err))
		}
		results[i] = time.Since(start)
		logger.Debug("benchmark done",
			zap.String("impl", info.name),
			zap.Duration("elapsed", results[i]))
	}

	// Results
	fmt.Printf("\nResults (insert + remove per iteration):\n")
	baseline := float64(results[0].Nanoseconds()) / float64(*iterations)

	for i, info := range benches {
		perOp := float64(results[i].Nanoseconds()) / float64(*iterations)
		speedup := baseline / perOp
		throughput := 1000 / perOp // M ops/sec

		fmt.Printf("  %-20s %12v  %8.2f ns/op  %6.2fx  %8.2f M/s\n",
			info.name, results[i], perOp, speedup, throughput)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runChannel(n, size int) error {
	ch := make(chan int, size)
	for i := 0; i < n; i++ {
		ch <- i
		<-ch
	}
	return nil
}

func runStack(n, capacity int) error {
	s := stack.New[int](capacity)
	for i := 0; i < n; i++ {
		s.Push(i)
		if _, err := s.Pop(); err != nil {
			return err
		}
	}
	return nil
}

func runQueue(n, capacity int) error {
	q := queue.New[int](capacity)
	for i := 0; i < n; i++ {
		q.Enqueue(i)
		if _, err := q.Dequeue(); err != nil {
			return err
		}
	}
	return nil
}

// ringSize is the lock-free ring capacity; -size does not apply to it.
const ringSize = 1024

func runLockFreeRing(n int) error {
	r, err := ring.NewShardedRing(ringSize, 1)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for !r.Write(0, i) {
			r.TryRead()
		}
		r.TryRead()
	}
	return nil
}
