// Package textdiff diffs text line by line and refines changed lines with a word diff.
//
// The result is meant for humans reading a failed comparison, e.g. the actual and expected value of
// a test assertion. By default, invisible characters are escaped so that differences in whitespace
// and line terminators show up in the output.
package textdiff

import (
	"fmt"
	"strings"
	"unicode"

	"znkr.io/assertdiff/diff"
)

// Line is a single line of a text diff.
//
// Details is only set for Inserted and Removed lines that were paired with a line of the opposite
// kind. It holds the word diff of the two lines, restricted to the words of this line: Kept words
// are shared with the paired line, the others are the words that changed.
type Line struct {
	Op      diff.Op
	Value   string
	Details []diff.Edit[string]
}

// Diff compares the lines of x and y and returns the changes necessary to convert from one to the
// other.
func Diff(x, y string, opts ...Option) []Line {
	lines, err := DiffLimit(x, y, -1, opts...)
	if err != nil {
		panic(fmt.Sprintf("unbounded text diff failed: %v", err))
	}
	return lines
}

// DiffLimit is like [Diff] but fails with an error wrapping [diff.ErrCostLimit] if the line diff
// or any of the word diffs exceeds maxCost edits. A negative maxCost disables the limit.
func DiffLimit(x, y string, maxCost int, opts ...Option) ([]Line, error) {
	cfg := fromOptions(opts)
	if cfg.escape {
		x, y = Escape(x), Escape(y)
	}

	edits, err := diff.DiffFuncLimit(Lines(x), Lines(y), equal, maxCost)
	if err != nil {
		return nil, fmt.Errorf("diffing lines: %w", err)
	}
	if len(edits) == 0 {
		return nil, nil
	}

	lines := make([]Line, len(edits))
	for i, e := range edits {
		lines[i] = Line{Op: e.Op, Value: e.Value}
	}
	if cfg.indentHeuristic {
		slideGroups(lines, cfg.escape)
	}
	if cfg.wordDiff {
		if err := pairLines(lines, maxCost, cfg.escape); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func equal(a, b string) bool { return a == b }

// pairLines looks for pairs of removed and inserted lines that share content and attaches the word
// diff of every pair to both lines. escaped reports whether the lines are the output of [Escape].
func pairLines(lines []Line, maxCost int, escaped bool) error {
	var added, removed []int
	for i, l := range lines {
		switch l.Op {
		case diff.Inserted:
			added = append(added, i)
		case diff.Removed:
			removed = append(removed, i)
		}
	}

	shorter, longer := removed, added
	if len(added) < len(removed) {
		shorter, longer = added, removed
	}

	for _, a := range shorter {
		for len(longer) > 0 {
			b := longer[0]
			longer = longer[1:]

			rm, ad := a, b
			if lines[a].Op == diff.Inserted {
				rm, ad = b, a
			}
			words, err := diff.DiffFuncLimit(splitWords(lines[rm].Value, escaped), splitWords(lines[ad].Value, escaped), equal, maxCost)
			if err != nil {
				return fmt.Errorf("diffing words of lines %d and %d: %w", rm, ad, err)
			}
			if sharesContent(words) {
				lines[a].Details = details(lines[a].Op, words)
				lines[b].Details = details(lines[b].Op, words)
				break
			}
		}
	}
	return nil
}

// sharesContent reports whether words keeps anything but whitespace.
func sharesContent(words []diff.Edit[string]) bool {
	for _, w := range words {
		if w.Op == diff.Kept && strings.IndexFunc(w.Value, isNotSpace) >= 0 {
			return true
		}
	}
	return false
}

func isNotSpace(r rune) bool { return !unicode.IsSpace(r) }

// details returns the words of a word diff that belong to a line with the given op.
func details(op diff.Op, words []diff.Edit[string]) []diff.Edit[string] {
	var own []diff.Edit[string]
	for _, w := range words {
		if w.Op == op || w.Op == diff.Kept {
			own = append(own, w)
		}
	}
	return mergeBlanks(own)
}

// mergeBlanks marks whitespace between two changed words as changed too, so that a run of changed
// words is displayed as a single change.
func mergeBlanks(words []diff.Edit[string]) []diff.Edit[string] {
	if len(words) < 3 {
		return words
	}
	merged := make([]diff.Edit[string], len(words))
	copy(merged, words)
	for i := 1; i < len(words)-1; i++ {
		w, prev, next := words[i], words[i-1], words[i+1]
		if w.Op == diff.Kept && w.Value != "" && isBlank(w.Value) && prev.Op != diff.Kept && prev.Op == next.Op {
			merged[i].Op = prev.Op
		}
	}
	return merged
}
