package document

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Node kinds for the block types this package substitutes into the tree.
var (
	KindFigure     = ast.NewNodeKind("PlotfenceFigure")
	KindSourceLink = ast.NewNodeKind("PlotfenceSourceLink")
	KindErrorBlock = ast.NewNodeKind("PlotfenceErrorBlock")
)

// Figure is the block node substituted for a successfully rendered code
// block. Residual attributes are re-attached to the <figure> element.
type Figure struct {
	ast.BaseBlock

	Path    string     // image artifact path
	Caption string     // rendered as plain text in <figcaption>
	ID      string     // carried over from the source block
	Attrs   Attributes // residual attributes
}

// Kind implements ast.Node.
func (n *Figure) Kind() ast.NodeKind { return KindFigure }

// Dump implements ast.Node.
func (n *Figure) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Path":    n.Path,
		"Caption": n.Caption,
	}, nil)
}

// SourceLink is the paragraph linking a figure to its persisted script,
// inserted after the Figure when "include source" is on.
type SourceLink struct {
	ast.BaseBlock

	Path string // script artifact path
}

// Kind implements ast.Node.
func (n *SourceLink) Kind() ast.NodeKind { return KindSourceLink }

// Dump implements ast.Node.
func (n *SourceLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Path": n.Path}, nil)
}

// ErrorBlock replaces a code block whose figure could not be rendered.
// The original code stays visible and is followed by an error marker, so
// failures show up in the output document and not only in logs.
type ErrorBlock struct {
	ast.FencedCodeBlock

	Message string
}

// Kind implements ast.Node.
func (n *ErrorBlock) Kind() ast.NodeKind { return KindErrorBlock }

// IsRaw implements ast.Node.
func (n *ErrorBlock) IsRaw() bool { return true }

// nodeRenderer renders the custom node kinds to HTML.
type nodeRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindFigure, r.renderFigure)
	reg.Register(KindSourceLink, r.renderSourceLink)
	reg.Register(KindErrorBlock, r.renderErrorBlock)
}

func (r *nodeRenderer) renderFigure(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Figure)

	_, _ = w.WriteString("<figure")
	if n.ID != "" {
		writeAttr(w, "id", n.ID)
	}
	for _, kv := range n.Attrs {
		writeAttr(w, kv[0], kv[1])
	}
	_, _ = w.WriteString(">\n<img src=\"")
	html.DefaultWriter.RawWrite(w, []byte(n.Path))
	_, _ = w.WriteString("\" alt=\"")
	html.DefaultWriter.RawWrite(w, []byte(n.Caption))
	_, _ = w.WriteString("\">\n")
	if n.Caption != "" {
		_, _ = w.WriteString("<figcaption>")
		html.DefaultWriter.RawWrite(w, []byte(n.Caption))
		_, _ = w.WriteString("</figcaption>\n")
	}
	_, _ = w.WriteString("</figure>\n")
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderSourceLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*SourceLink)

	_, _ = w.WriteString("<p class=\"plotfence-source\"><a href=\"")
	html.DefaultWriter.RawWrite(w, []byte(n.Path))
	_, _ = w.WriteString("\">Source code</a></p>\n")
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderErrorBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ErrorBlock)

	_, _ = w.WriteString("<pre><code>")
	html.DefaultWriter.RawWrite(w, blockLines(n.Lines(), source))
	_, _ = w.WriteString("</code></pre>\n<div class=\"plotfence-error\"><p>")
	html.DefaultWriter.RawWrite(w, []byte(n.Message))
	_, _ = w.WriteString("</p></div>\n")
	return ast.WalkSkipChildren, nil
}

func writeAttr(w util.BufWriter, key, value string) {
	_ = w.WriteByte(' ')
	_, _ = w.WriteString(key)
	_, _ = w.WriteString(`="`)
	html.DefaultWriter.RawWrite(w, []byte(value))
	_, _ = w.WriteString(`"`)
}
