package main

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRunDemo(t *testing.T) {
	var out strings.Builder
	if err := runDemo(&out, 5, zap.NewNop()); err != nil {
		t.Fatalf("runDemo: %v", err)
	}

	want := "[1, 2, 3]\n[1, 2, 3]\n1\n[2, 3]\n[2, 3, 4]\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

// Capacity 3 makes the final enqueue wrap instead of grow.
func TestRunDemo_Wrap(t *testing.T) {
	var out strings.Builder
	if err := runDemo(&out, 3, zap.NewNop()); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	if !strings.HasSuffix(out.String(), "[2, 3, 4]\n") {
		t.Errorf("expected output to end with [2, 3, 4], got %q", out.String())
	}
}

func TestRunLoad(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"stack", "[10, 20, 30]\n"},
		{"queue", "[10, 20, 30]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			var out strings.Builder
			err := runLoad(strings.NewReader("3 10 20 30"), &out, tc.kind, 0, zap.NewNop())
			if err != nil {
				t.Fatalf("runLoad: %v", err)
			}
			if out.String() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, out.String())
			}
		})
	}
}

func TestRunLoad_Errors(t *testing.T) {
	var out strings.Builder
	if err := runLoad(strings.NewReader("1 1"), &out, "deque", 0, zap.NewNop()); err == nil {
		t.Error("expected error for unknown kind")
	}
	if err := runLoad(strings.NewReader("2 1"), &out, "queue", 0, zap.NewNop()); err == nil {
		t.Error("expected error for short input")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on error, got %q", out.String())
	}
}
