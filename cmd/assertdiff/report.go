package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"znkr.io/assertdiff/diff"
	"znkr.io/assertdiff/internal/server"
	"znkr.io/assertdiff/render"
	"znkr.io/assertdiff/textdiff"
)

type options struct {
	noColor         bool
	verbatim        bool
	noWordDiff      bool
	indentHeuristic bool
	maxCost         int
	htmlFile        string
	lang            string
	message         string
	minify          bool
}

type inputs struct {
	actualPath, expectedPath string
	actual, expected         string
}

// loadInputs reads both inputs. A path of "-" reads from stdin, which is only possible for one of
// them.
func loadInputs(stdin io.Reader, actualPath, expectedPath string) (inputs, error) {
	if actualPath == "-" && expectedPath == "-" {
		return inputs{}, errors.New("only one of ACTUAL and EXPECTED can be read from stdin")
	}
	in := inputs{actualPath: actualPath, expectedPath: expectedPath}
	var err error
	if in.actual, err = readInput(stdin, actualPath); err != nil {
		return inputs{}, err
	}
	if in.expected, err = readInput(stdin, expectedPath); err != nil {
		return inputs{}, err
	}
	return in, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %v", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %v", err)
	}
	return string(b), nil
}

func (o *options) textdiffOptions() []textdiff.Option {
	var ret []textdiff.Option
	if o.verbatim {
		ret = append(ret, textdiff.Verbatim())
	}
	if o.noWordDiff {
		ret = append(ret, textdiff.WordDiff(false))
	}
	if o.indentHeuristic {
		ret = append(ret, textdiff.IndentHeuristic())
	}
	return ret
}

func (o *options) diff(in inputs) ([]textdiff.Line, error) {
	lines, err := textdiff.DiffLimit(in.actual, in.expected, o.maxCost, o.textdiffOptions()...)
	if err != nil {
		return nil, fmt.Errorf("comparing %s and %s: %w", in.actualPath, in.expectedPath, err)
	}
	return lines, nil
}

func renderHTML(in inputs, lines []textdiff.Line, o options) ([]byte, error) {
	var buf bytes.Buffer
	err := render.HTML(&buf, lines, render.HTMLOptions{
		Title:    fmt.Sprintf("%s vs. %s", in.actualPath, in.expectedPath),
		Lang:     o.lang,
		Filename: in.expectedPath,
		Message:  o.message,
		Minify:   o.minify,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeReport(file string, in inputs, lines []textdiff.Line, o options) error {
	b, err := renderHTML(in, lines, o)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, b, 0644); err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	return nil
}

// buildReport loads both files and renders a report for the server.
func buildReport(actualPath, expectedPath string, o options) (*server.Report, error) {
	in, err := loadInputs(nil, actualPath, expectedPath)
	if err != nil {
		return nil, err
	}
	lines, err := o.diff(in)
	if err != nil {
		return nil, err
	}
	b, err := renderHTML(in, lines, o)
	if err != nil {
		return nil, err
	}
	return &server.Report{HTML: b, Modified: time.Now()}, nil
}

func isEqual(lines []textdiff.Line) bool {
	for _, l := range lines {
		if l.Op != diff.Kept {
			return false
		}
	}
	return true
}
