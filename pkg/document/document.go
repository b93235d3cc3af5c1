// Package document parses markdown, locates fenced code blocks, and
// substitutes rendered figures back into the tree.
//
// The package wraps goldmark. Parse builds the AST once; Blocks exposes
// each fenced code block together with its parsed info string; the
// substitution methods mutate the tree in place. RenderHTML serializes
// whatever the tree has become. How figures are produced is none of this
// package's business.
package document

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Document is a parsed markdown file whose tree can be mutated and
// re-rendered.
type Document struct {
	source []byte
	root   ast.Node
	md     goldmark.Markdown
}

// Parse builds a Document from markdown source.
func Parse(source []byte) *Document {
	md := goldmark.New(
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(
				util.Prioritized(&nodeRenderer{}, 100),
			),
		),
	)
	root := md.Parser().Parse(text.NewReader(source))

	return &Document{source: source, root: root, md: md}
}

// Source returns the raw markdown the document was parsed from.
func (d *Document) Source() []byte { return d.source }

// CodeBlock is one fenced code block in the tree. InfoErr is set when
// the info string carries a malformed attribute block; such blocks are
// never eligible for rendering but pass through to the output intact.
type CodeBlock struct {
	BlockInfo

	Text    string // block content
	Info    string // raw info string
	InfoErr error

	doc  *Document
	node ast.Node
}

// Blocks returns every fenced code block in document order.
func (d *Document) Blocks() []*CodeBlock {
	var blocks []*CodeBlock

	// The callback never fails, so neither can Walk.
	_ = ast.Walk(d.root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block := &CodeBlock{
			Text: string(blockLines(fence.Lines(), d.source)),
			doc:  d,
			node: fence,
		}
		if fence.Info != nil {
			block.Info = string(fence.Info.Segment.Value(d.source))
		}
		block.BlockInfo, block.InfoErr = ParseInfo(block.Info)

		blocks = append(blocks, block)
		return ast.WalkContinue, nil
	})

	return blocks
}

// RenderHTML serializes the current tree.
func (d *Document) RenderHTML(w io.Writer) error {
	return d.md.Renderer().Render(w, d.source, d.root)
}

// ReplaceWithFigure substitutes the block with a rendered figure.
func (b *CodeBlock) ReplaceWithFigure(fig *Figure) {
	b.replace(fig)
}

// AppendSourceLink inserts a source-link paragraph after the block's
// current node (the figure, once ReplaceWithFigure has run).
func (b *CodeBlock) AppendSourceLink(path string) {
	parent := b.node.Parent()
	parent.InsertAfter(parent, b.node, &SourceLink{Path: path})
}

// ReplaceWithError substitutes the block with its original content
// followed by a visible error marker.
func (b *CodeBlock) ReplaceWithError(message string) {
	fence, ok := b.node.(*ast.FencedCodeBlock)
	if !ok {
		return
	}

	eb := &ErrorBlock{FencedCodeBlock: *fence, Message: message}
	// The copied base node still points into the tree; detach it before
	// inserting.
	eb.SetParent(nil)
	eb.SetPreviousSibling(nil)
	eb.SetNextSibling(nil)
	b.replace(eb)
}

func (b *CodeBlock) replace(n ast.Node) {
	parent := b.node.Parent()
	parent.ReplaceChild(parent, b.node, n)
	b.node = n
}

// blockLines joins the line segments of a fenced block.
func blockLines(lines *text.Segments, source []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}

	return buf.Bytes()
}
