package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/assertdiff/diff"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot(t *testing.T) {
	actual := writeFile(t, "actual.txt", "foo\nbar\n")
	expected := writeFile(t, "expected.txt", "foo\nbaz\n")

	t.Run("equal", func(t *testing.T) {
		out, err := execute(t, "", actual, actual)
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if out != "" {
			t.Errorf("equal inputs printed %q", out)
		}
	})

	t.Run("different", func(t *testing.T) {
		out, err := execute(t, "", "--verbatim", "--no-word-diff", actual, expected)
		if !errors.Is(err, errDifferent) {
			t.Fatalf("execute error = %v, want %v", err, errDifferent)
		}
		want := "\n\n    [Diff] Actual / Expected\n\n\n" +
			"    foo\n" +
			"-   bar\n" +
			"+   baz\n" +
			"\n"
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("output is different (-want, +got):\n%s", diff)
		}
	})

	t.Run("stdin", func(t *testing.T) {
		_, err := execute(t, "foo\nbar\n", "-", actual)
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
	})

	t.Run("html-report", func(t *testing.T) {
		report := filepath.Join(t.TempDir(), "report.html")
		_, err := execute(t, "", "--html", report, "--message", "NOTE: see below", actual, expected)
		if !errors.Is(err, errDifferent) {
			t.Fatalf("execute error = %v, want %v", err, errDifferent)
		}
		b, err := os.ReadFile(report)
		if err != nil {
			t.Fatalf("reading report: %v", err)
		}
		if !strings.Contains(string(b), `<p class="admonition-title">Note</p>`) {
			t.Errorf("report doesn't contain the message:\n%s", b)
		}
	})

	t.Run("missing-file", func(t *testing.T) {
		_, err := execute(t, "", actual, filepath.Join(t.TempDir(), "missing.txt"))
		if err == nil || errors.Is(err, errDifferent) {
			t.Errorf("execute error = %v, want a read error", err)
		}
	})

	t.Run("stdin-twice", func(t *testing.T) {
		_, err := execute(t, "", "-", "-")
		if err == nil || errors.Is(err, errDifferent) {
			t.Errorf("execute error = %v, want an error", err)
		}
	})

	t.Run("cost-limit", func(t *testing.T) {
		_, err := execute(t, "", "--max-cost", "1", actual, expected)
		if !errors.Is(err, diff.ErrCostLimit) {
			t.Errorf("execute error = %v, want %v", err, diff.ErrCostLimit)
		}
	})
}

func TestBuildReport(t *testing.T) {
	actual := writeFile(t, "actual.go", "package a\n")
	expected := writeFile(t, "expected.go", "package b\n")

	r, err := buildReport(actual, expected, options{maxCost: -1})
	if err != nil {
		t.Fatalf("buildReport failed: %v", err)
	}
	if r.Modified.IsZero() {
		t.Errorf("report has no modification time")
	}
	for _, want := range []string{"<del>a</del>", "<ins>b</ins>", `<span class="hl-b">package</span>`} {
		if !strings.Contains(string(r.HTML), want) {
			t.Errorf("report doesn't contain %q:\n%s", want, r.HTML)
		}
	}
}
