package diff

// Implementation note: The search below is the O(NP) variant of Myers' algorithm described in
// "An O(NP) Sequence Comparison Algorithm" by Wu, Manber, Myers and Miller. The variant always
// walks the edit graph from the longer sequence's point of view and only explores the band of
// diagonals that can still lead to the end point with p deletions. Good explanations of the
// underlying idea:
//
// https://blog.jcoglan.com/2017/02/12/the-myers-diff-algorithm-part-1/
// https://publications.mpi-cbg.de/Wu_1990_6334.pdf

import (
	"fmt"
	"slices"
)

const debug bool = false

// move is a single step through the edit graph.
type move uint8

const (
	moveRoot move = iota // Origin of every path, only used by the sentinel at handle 0
	moveA                // Consumes an element of the longer sequence
	moveB                // Consumes an element of the shorter sequence
	moveKeep             // Consumes an element of both sequences
)

// step is an entry of the backtrace log. Entries are addressed by their index in the log, the
// handle 0 is reserved for the root of all paths.
type step struct {
	prev int
	move move
}

// farthestPoint is the furthest point reached on a diagonal k = x - y, where x indexes the longer
// sequence. A negative x marks a diagonal that hasn't been reached yet.
type farthestPoint struct {
	x  int
	id int // handle of the step that reached this point
}

type search[T any] struct {
	a, b    []T // a is never shorter than b
	eq      func(a, b T) bool
	swapped bool // a is y and b is x
	log     []step
}

// shortestEditScript appends the shortest edit script from x to y to edits. Both x and y must be
// non-empty. It fails if the edit distance is greater than maxCost, unless maxCost is negative.
func shortestEditScript[T any](edits []Edit[T], x, y []T, eq func(a, b T) bool, maxCost int) ([]Edit[T], error) {
	s := search[T]{a: x, b: y, eq: eq}
	if len(y) > len(x) {
		s.a, s.b = y, x
		s.swapped = true
		s.eq = func(a, b T) bool { return eq(b, a) }
	}

	n, m := len(s.a), len(s.b)
	delta := n - m

	// Diagonals range from -m to n. One extra slot on each side means the neighbors of every
	// diagonal can be read without bounds checks.
	offset := m + 1
	fp := make([]farthestPoint, n+m+3)
	for i := range fp {
		fp[i].x = -1
	}
	s.log = make([]step, 1, n+m+1)

	// The order in which the diagonals are visited is essential: every diagonal reads the neighbor
	// that was already updated in this round and the neighbor that still holds the previous round's
	// value.
	for p := 0; fp[delta+offset].x < n; p++ {
		if maxCost >= 0 && delta+2*p > maxCost {
			return nil, costError(delta+2*p, maxCost)
		}
		for k := -p; k < delta; k++ {
			fp[k+offset] = s.snake(k, fp[k-1+offset], fp[k+1+offset])
		}
		for k := delta + p; k > delta; k-- {
			fp[k+offset] = s.snake(k, fp[k-1+offset], fp[k+1+offset])
		}
		fp[delta+offset] = s.snake(delta, fp[delta-1+offset], fp[delta+1+offset])
	}

	return s.backtrack(edits, fp[delta+offset]), nil
}

// snake computes the farthest point on diagonal k from its neighbors left (diagonal k-1) and right
// (diagonal k+1) and then follows the diagonal as long as the elements are equal.
func (s *search[T]) snake(k int, left, right farthestPoint) farthestPoint {
	var fp farthestPoint
	switch {
	case left.x < 0 && right.x < 0:
		// Origin. Only ever happens for k = 0 in the first round.
		if debug && k != 0 {
			panic(fmt.Sprintf("diagonal %d has no reachable neighbor", k))
		}
		fp = farthestPoint{x: 0, id: 0}
	case right.x < 0 || left.x >= 0 && s.preferA(left.x+1, right.x):
		fp = farthestPoint{x: left.x + 1, id: s.record(left.id, moveA)}
	default:
		fp = farthestPoint{x: right.x, id: s.record(right.id, moveB)}
	}

	n, m := len(s.a), len(s.b)
	if debug && (fp.x > n || fp.x-k > m || fp.x-k < 0) {
		panic(fmt.Sprintf("point (%d, %d) is outside of the edit graph", fp.x, fp.x-k))
	}
	for x, y := fp.x, fp.x-k; x < n && y < m && s.eq(s.a[x], s.b[y]); x, y = x+1, y+1 {
		fp.id = s.record(fp.id, moveKeep)
		fp.x++
	}
	return fp
}

// preferA reports whether a step along a (reaching xa) is better than a step along b (reaching xb).
// The further point wins. On a tie, the step that turns into an insertion wins, so that equal
// inputs always produce the same script regardless of which side is longer.
func (s *search[T]) preferA(xa, xb int) bool {
	if xa != xb {
		return xa > xb
	}
	return s.swapped
}

func (s *search[T]) record(prev int, mv move) int {
	s.log = append(s.log, step{prev, mv})
	return len(s.log) - 1
}

// backtrack appends the edits along the path ending in end to edits. The log is walked from the
// end to the root, so the edits are appended in reverse and reversed in place afterwards.
func (s *search[T]) backtrack(edits []Edit[T], end farthestPoint) []Edit[T] {
	preexistingEdits := len(edits)
	x, y := len(s.a), len(s.b)

	for id := end.id; id != 0; id = s.log[id].prev {
		switch s.log[id].move {
		case moveA:
			x--
			if s.swapped {
				edits = append(edits, Edit[T]{Inserted, s.a[x]})
			} else {
				edits = append(edits, Edit[T]{Removed, s.a[x]})
			}
		case moveB:
			y--
			if s.swapped {
				edits = append(edits, Edit[T]{Removed, s.b[y]})
			} else {
				edits = append(edits, Edit[T]{Inserted, s.b[y]})
			}
		case moveKeep:
			x--
			y--
			if s.swapped {
				edits = append(edits, Edit[T]{Kept, s.b[y]})
			} else {
				edits = append(edits, Edit[T]{Kept, s.a[x]})
			}
		default:
			panic(fmt.Sprintf("unexpected move %d in backtrace log", s.log[id].move))
		}
	}

	if debug && (x != 0 || y != 0) {
		panic(fmt.Sprintf("backtrace ended at (%d, %d) instead of the origin", x, y))
	}

	slices.Reverse(edits[preexistingEdits:])
	return edits
}
