// Package markdown converts post sources to HTML and derives plain-text excerpts.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/eringen/inkwell/style"
)

// Renderer converts Markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer whose fenced code blocks carry the language badges
// defined by theme.
func New(theme *style.Theme) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Post bodies are authored by the site owner and may embed HTML.
			gmhtml.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(&codeBlockRenderer{theme: theme}, 100),
			),
		),
	)
	return &Renderer{md: md}
}

// Convert renders src to HTML.
func (r *Renderer) Convert(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// codeBlockRenderer wraps fenced code in a badge container. The badge label
// and class come from the theme's language table, not from the raw tag.
type codeBlockRenderer struct {
	theme *style.Theme
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	tag := string(n.Language(source))

	if tag == "" {
		_, _ = w.WriteString("<pre><code>")
		writeLines(w, source, n)
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkSkipChildren, nil
	}

	escaped := string(util.EscapeHTML([]byte(tag)))
	_, _ = w.WriteString(`<div class="code-block-wrapper">`)
	if lang, badge, ok := r.theme.BadgeForTag(tag); ok {
		_, _ = w.WriteString(`<span class="code-lang ` + lang.Class() + `">`)
		_, _ = w.Write(util.EscapeHTML([]byte(badge.Label)))
		_, _ = w.WriteString(`</span>`)
	}
	_, _ = w.WriteString(`<pre class="language-` + escaped + `"><code class="language-` + escaped + `">`)
	writeLines(w, source, n)
	_, _ = w.WriteString("</code></pre></div>\n")
	return ast.WalkSkipChildren, nil
}

func writeLines(w util.BufWriter, source []byte, n *ast.FencedCodeBlock) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
}
