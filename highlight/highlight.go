// Package highlight turns text and text diffs into syntax highlighted HTML.
package highlight

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"znkr.io/assertdiff/diff"
	"znkr.io/assertdiff/textdiff"
)

var style = map[chroma.TokenType]string{
	chroma.Keyword:           "hl-b",
	chroma.KeywordPseudo:     "",
	chroma.KeywordType:       "",
	chroma.NameClass:         "hl-b",
	chroma.NameEntity:        "hl-b",
	chroma.NameException:     "hl-b",
	chroma.NameNamespace:     "hl-b",
	chroma.NameTag:           "hl-b",
	chroma.NameBuiltin:       "hl-bl",
	chroma.LiteralString:     "hl-i",
	chroma.OperatorWord:      "hl-b",
	chroma.Comment:           "hl-ii",
	chroma.CommentPreproc:    "",
	chroma.GenericEmph:       "hl-i",
	chroma.GenericHeading:    "hl-b",
	chroma.GenericPrompt:     "hl-b",
	chroma.GenericStrong:     "hl-b",
	chroma.GenericSubheading: "hl-b",
}

type Option func(*highlighter)

// Lang selects the lexer by language name, e.g. "go" or "json".
func Lang(lang string) Option {
	return func(o *highlighter) {
		o.lexer = lexers.Get(lang)
	}
}

// LangFromFilename selects the lexer matching a file name.
func LangFromFilename(filename string) Option {
	return func(o *highlighter) {
		o.lexer = lexers.Match(filename)
	}
}

// Fragment highlights in. Without a lexer, the result is just the escaped input.
func Fragment(in string, opts ...Option) (template.HTML, error) {
	hl := fromOptions(opts)
	tokens, err := hl.tokens(in)
	if err != nil {
		return "", fmt.Errorf("parsing input: %v", err)
	}
	return template.HTML(hl.highlight(tokens)), nil
}

// Edit is a highlighted line of a text diff.
type Edit struct {
	Op      diff.Op
	XLineNo int // line number in the left text or -1 for inserted lines
	YLineNo int // line number in the right text or -1 for removed lines
	Content template.HTML
}

func (ed *Edit) IsKept() bool     { return ed.Op == diff.Kept }
func (ed *Edit) IsRemoved() bool  { return ed.Op == diff.Removed }
func (ed *Edit) IsInserted() bool { return ed.Op == diff.Inserted }

// Diff highlights the lines of a text diff. Line terminators are dropped. If a line has details,
// changed words are wrapped in <del> or <ins>.
func Diff(lines []textdiff.Line, opts ...Option) ([]Edit, error) {
	hl := fromOptions(opts)

	ret := make([]Edit, 0, len(lines))
	s, t := 0, 0
	for _, line := range lines {
		content, err := hl.line(line)
		if err != nil {
			return nil, err
		}
		switch line.Op {
		case diff.Kept:
			ret = append(ret, Edit{line.Op, s + 1, t + 1, content})
			s++
			t++
		case diff.Removed:
			ret = append(ret, Edit{line.Op, s + 1, -1, content})
			s++
		case diff.Inserted:
			ret = append(ret, Edit{line.Op, -1, t + 1, content})
			t++
		}
	}
	return ret, nil
}

type highlighter struct {
	lexer chroma.Lexer
}

func fromOptions(opts []Option) *highlighter {
	hl := &highlighter{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(hl)
	}

	if hl.lexer == nil {
		hl.lexer = lexers.Fallback
	}
	hl.lexer = chroma.Coalesce(hl.lexer)
	return hl
}

func (hl *highlighter) line(line textdiff.Line) (template.HTML, error) {
	if line.Details == nil {
		tokens, err := hl.tokens(chomp(line.Value))
		if err != nil {
			return "", err
		}
		return template.HTML(hl.highlight(tokens)), nil
	}

	// The details join to the full line, only highlight the part before the terminator.
	remaining := len(chomp(line.Value))
	var sb strings.Builder
	for _, w := range line.Details {
		v := w.Value[:min(len(w.Value), remaining)]
		remaining -= len(v)
		if v == "" {
			continue
		}
		tokens, err := hl.tokens(v)
		if err != nil {
			return "", err
		}
		switch w.Op {
		case diff.Kept:
			sb.WriteString(hl.highlight(tokens))
		case diff.Removed:
			fmt.Fprintf(&sb, "<del>%s</del>", hl.highlight(tokens))
		case diff.Inserted:
			fmt.Fprintf(&sb, "<ins>%s</ins>", hl.highlight(tokens))
		}
	}
	return template.HTML(sb.String()), nil
}

func (hl *highlighter) highlight(line []chroma.Token) string {
	var sb strings.Builder
	for _, token := range line {
		class := class(token.Type)
		if class != "" {
			fmt.Fprintf(&sb, "<span class=\"%s\">", class)
		}
		sb.WriteString(html.EscapeString(token.Value))
		if class != "" {
			fmt.Fprintf(&sb, "</span>")
		}
	}
	return sb.String()
}

func (hl *highlighter) tokens(in string) ([]chroma.Token, error) {
	if in == "" {
		return nil, nil
	}
	it, err := hl.lexer.Tokenise(nil, in)
	if err != nil {
		return nil, fmt.Errorf("creating iterator: %v", err)
	}
	return it.Tokens(), nil
}

// chomp removes a trailing line terminator.
func chomp(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}

func class(t chroma.TokenType) string {
	s, ok := style[t]
	if ok {
		return s
	}
	s, ok = style[t.SubCategory()]
	if ok {
		return s
	}
	s, ok = style[t.Category()]
	if ok {
		return s
	}
	return ""
}
