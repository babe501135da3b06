// Package markdown renders the free form message attached to a diff report.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Render converts Markdown to HTML. Raw HTML in the input is omitted.
func Render(data []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			Admonition,
		),
	)

	var buf bytes.Buffer
	if err := md.Convert(data, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %v", err)
	}

	return buf.Bytes(), nil
}
