// Package render formats text diffs for humans, either as a colored terminal message or as an HTML
// report.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"znkr.io/assertdiff/diff"
	"znkr.io/assertdiff/textdiff"
)

// TerminalOptions configures [Terminal].
type TerminalOptions struct {
	NoColor bool // Disable ANSI colors
}

// Terminal writes lines as an assertion message. Removed lines belong to the actual value and
// are prefixed with "-", inserted lines belong to the expected value and are prefixed with "+".
func Terminal(w io.Writer, lines []textdiff.Line, opts TerminalOptions) error {
	p := newPalette(opts.NoColor)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\n\n    %s %s / %s\n\n\n",
		p.header.Sprint("[Diff]"), p.removed.Sprint("Actual"), p.inserted.Sprint("Expected"))

	for _, l := range lines {
		var lineColor, wordColor *color.Color
		switch l.Op {
		case diff.Kept:
			bw.WriteString("    ")
		case diff.Removed:
			lineColor, wordColor = p.removed, p.removedWord
			bw.WriteString(lineColor.Sprint("-   "))
		case diff.Inserted:
			lineColor, wordColor = p.inserted, p.insertedWord
			bw.WriteString(lineColor.Sprint("+   "))
		}

		value, eol := splitTerminator(l.Value)
		switch {
		case lineColor == nil:
			bw.WriteString(value)
		case l.Details == nil:
			bw.WriteString(lineColor.Sprint(value))
		default:
			// The details join to the full line, only write the part before the terminator.
			remaining := len(value)
			for _, d := range l.Details {
				v := d.Value[:min(len(d.Value), remaining)]
				remaining -= len(v)
				if v == "" {
					continue
				}
				if d.Op == diff.Kept {
					bw.WriteString(lineColor.Sprint(v))
				} else {
					bw.WriteString(wordColor.Sprint(v))
				}
			}
		}
		bw.WriteString(eol)
	}
	bw.WriteString("\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing diff: %v", err)
	}
	return nil
}

type palette struct {
	header       *color.Color
	removed      *color.Color
	inserted     *color.Color
	removedWord  *color.Color
	insertedWord *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		header:       color.New(color.FgHiBlack, color.Bold),
		removed:      color.New(color.FgRed, color.Bold),
		inserted:     color.New(color.FgGreen, color.Bold),
		removedWord:  color.New(color.BgRed, color.FgWhite, color.Bold),
		insertedWord: color.New(color.BgGreen, color.FgWhite, color.Bold),
	}
	for _, c := range []*color.Color{p.header, p.removed, p.inserted, p.removedWord, p.insertedWord} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// splitTerminator splits s into its content and line terminator. A missing terminator and a lone
// "\r" are reported as "\n", so that every line of a diff ends up on its own line.
func splitTerminator(s string) (string, string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1], "\n"
	default:
		return s, "\n"
	}
}
