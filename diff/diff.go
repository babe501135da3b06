// Package diff computes shortest edit scripts between two slices of an arbitrary element type.
//
// The search is Myers' O(ND) algorithm in the formulation of Wu, Manber, Myers and Miller ("An
// O(NP) Sequence Comparison Algorithm"), which visits the diagonals of the edit graph in an order
// that allows a single farthest-point slice to be reused across depths. Common prefixes and
// suffixes are removed before the search starts.
//
// The result is always a shortest edit script, but not necessarily the most readable one.
package diff

import (
	"errors"
	"fmt"
)

// Op describes an edit operation.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Kept     Op = iota // The element is present in both slices
	Inserted           // The element is only present in the right slice
	Removed            // The element is only present in the left slice
)

// Edit describes a single edit of a diff.
//
//   - For Kept, Value is the element of the left slice
//   - For Inserted, Value is the element of the right slice that's missing in the left one
//   - For Removed, Value is the element of the left slice that's missing in the right one
type Edit[T any] struct {
	Op    Op
	Value T
}

// ErrCostLimit is returned by [DiffFuncLimit] if the edit distance exceeds the requested limit.
var ErrCostLimit = errors.New("edit cost limit exceeded")

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Diff returns one edit for every element in the input slices. If x and y are identical, the
// output will consist of a Kept edit for every element.
func Diff[T comparable](x, y []T) []Edit[T] {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	edits, err := DiffFuncLimit(x, y, eq, -1)
	if err != nil {
		panic(fmt.Sprintf("unbounded diff failed: %v", err))
	}
	return edits
}

// DiffFuncLimit is like [DiffFunc] but gives up once the edit distance is known to exceed
// maxCost. In that case the returned error wraps [ErrCostLimit]. A negative maxCost disables the
// limit.
func DiffFuncLimit[T any](x, y []T, eq func(a, b T) bool, maxCost int) ([]Edit[T], error) {
	var edits, suffix []Edit[T]

	// Try to reduce the amount of work necessary by skipping a common prefix.
	if n := commonPrefix(x, y, eq); n > 0 {
		edits = make([]Edit[T], 0, n)
		for i := range n {
			edits = append(edits, Edit[T]{Kept, x[i]})
		}
		x = x[n:]
		y = y[n:]
	}

	// Same for the suffix. The prefix is already gone, so the two can't overlap.
	if n := commonSuffix(x, y, eq); n > 0 {
		suffix = make([]Edit[T], 0, n)
		for i := range n {
			suffix = append(suffix, Edit[T]{Kept, x[len(x)-n+i]})
		}
		x = x[:len(x)-n]
		y = y[:len(y)-n]
	}

	switch {
	case len(x) == 0 && len(y) == 0:
		// nothing left to do
	case len(x) == 0:
		if maxCost >= 0 && len(y) > maxCost {
			return nil, costError(len(y), maxCost)
		}
		for i := range y {
			edits = append(edits, Edit[T]{Inserted, y[i]})
		}
	case len(y) == 0:
		if maxCost >= 0 && len(x) > maxCost {
			return nil, costError(len(x), maxCost)
		}
		for i := range x {
			edits = append(edits, Edit[T]{Removed, x[i]})
		}
	default:
		var err error
		edits, err = shortestEditScript(edits, x, y, eq, maxCost)
		if err != nil {
			return nil, err
		}
	}

	return append(edits, suffix...), nil
}

// Cost returns the number of insertions and removals in edits.
func Cost[T any](edits []Edit[T]) int {
	n := 0
	for _, e := range edits {
		if e.Op != Kept {
			n++
		}
	}
	return n
}

func costError(cost, limit int) error {
	return fmt.Errorf("%w: need at least %d edits, limit is %d", ErrCostLimit, cost, limit)
}

func commonPrefix[T any](x, y []T, eq func(a, b T) bool) int {
	n := min(len(x), len(y))
	for i := range n {
		if !eq(x[i], y[i]) {
			return i
		}
	}
	return n
}

func commonSuffix[T any](x, y []T, eq func(a, b T) bool) int {
	n := min(len(x), len(y))
	for i := range n {
		if !eq(x[len(x)-i-1], y[len(y)-i-1]) {
			return i
		}
	}
	return n
}
