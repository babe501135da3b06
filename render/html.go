package render

import (
	"bytes"
	"cmp"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"znkr.io/assertdiff/diff"
	"znkr.io/assertdiff/highlight"
	"znkr.io/assertdiff/internal/markdown"
	"znkr.io/assertdiff/textdiff"
)

// HTMLOptions configures [HTML].
type HTMLOptions struct {
	Title    string // Page title, defaults to "Diff"
	Lang     string // Language used for syntax highlighting
	Filename string // File name used to pick a language if Lang is empty
	Message  string // Markdown shown above the diff
	Minify   bool   // Minify the output
}

//go:embed report.html.tmpl
var reportTemplate string

var report = template.Must(template.New("report").Parse(reportTemplate))

// HTML writes lines as a self contained HTML page.
func HTML(w io.Writer, lines []textdiff.Line, opts HTMLOptions) error {
	var hlopt highlight.Option
	switch {
	case opts.Lang != "":
		hlopt = highlight.Lang(opts.Lang)
	case opts.Filename != "":
		hlopt = highlight.LangFromFilename(opts.Filename)
	}
	edits, err := highlight.Diff(lines, hlopt)
	if err != nil {
		return fmt.Errorf("highlighting diff: %v", err)
	}

	var message template.HTML
	if opts.Message != "" {
		b, err := markdown.Render([]byte(opts.Message))
		if err != nil {
			return err
		}
		message = template.HTML(b)
	}

	var buf bytes.Buffer
	err = report.Execute(&buf, struct {
		Title   string
		Message template.HTML
		Edits   []highlight.Edit
		Equal   bool
	}{
		Title:   cmp.Or(opts.Title, "Diff"),
		Message: message,
		Edits:   edits,
		Equal:   isEqual(lines),
	})
	if err != nil {
		return fmt.Errorf("rendering report: %v", err)
	}

	b := buf.Bytes()
	if opts.Minify {
		b, err = minifyHTML(b)
		if err != nil {
			return err
		}
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	return nil
}

func isEqual(lines []textdiff.Line) bool {
	for _, l := range lines {
		if l.Op != diff.Kept {
			return false
		}
	}
	return true
}
