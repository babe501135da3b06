package markdown

import (
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// admonitionLabels maps the label that starts an admonition paragraph to its CSS class and title.
var admonitionLabels = map[string]struct{ class, title string }{
	"NOTE":    {"note", "Note"},
	"HINT":    {"hint", "Hint"},
	"WARNING": {"warning", "Warning"},
}

var admonitionRE = regexp.MustCompile("^(NOTE|HINT|WARNING): ")

// AdmonitionNode is a paragraph starting with "NOTE: ", "HINT: " or "WARNING: ".
type AdmonitionNode struct {
	ast.BaseBlock
	Label string
}

var KindAdmonition = ast.NewNodeKind("Admonition")

func (n *AdmonitionNode) Kind() ast.NodeKind { return KindAdmonition }

func (n *AdmonitionNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Label": n.Label}, nil)
}

// Admonition is a goldmark extension that renders admonitions as boxes with a title.
var Admonition goldmark.Extender = &admonition{}

type admonition struct{}

func (e *admonition) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&admonitionParser{}, 999),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&admonitionRenderer{}, 500),
		),
	)
}

type admonitionParser struct{}

var _ parser.BlockParser = (*admonitionParser)(nil)

func (p *admonitionParser) Trigger() []byte {
	return []byte{'N', 'H', 'W'}
}

func (p *admonitionParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 {
		return nil, parser.NoChildren
	}

	label := admonitionRE.FindSubmatch(line[pos:])
	if label == nil {
		return nil, parser.NoChildren
	}
	reader.Advance(pos + len(label[0]))

	return &AdmonitionNode{Label: string(label[1])}, parser.HasChildren
}

func (p *admonitionParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Close
	}
	reader.Advance(reader.LineOffset())
	return parser.Continue | parser.HasChildren
}

func (p *admonitionParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *admonitionParser) CanInterruptParagraph() bool { return false }

func (p *admonitionParser) CanAcceptIndentedLine() bool { return false }

type admonitionRenderer struct{}

var _ renderer.NodeRenderer = (*admonitionRenderer)(nil)

func (r *admonitionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAdmonition, r.render)
}

func (r *admonitionRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*AdmonitionNode)
	l, ok := admonitionLabels[n.Label]
	if !ok {
		return ast.WalkStop, fmt.Errorf("unknown admonition label: %q", n.Label)
	}
	if entering {
		fmt.Fprintf(w, `<div class="admonition %s"><p class="admonition-title">%s</p>`, l.class, l.title)
	} else {
		w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}
