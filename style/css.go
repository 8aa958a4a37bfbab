package style

import (
	"fmt"
	"sort"
	"strings"
)

// GlobalCSS returns the document-wide rules: typography, code blocks with
// per-language badges, and responsive images. It is rendered once per theme.
func (t *Theme) GlobalCSS() string {
	t.once.Do(func() {
		t.globalCSS = t.buildGlobalCSS()
	})
	return t.globalCSS
}

// Stylesheet is everything a page needs: global rules plus component rules.
func (t *Theme) Stylesheet() string {
	return t.GlobalCSS() + t.LayoutCSS() + t.PostCSS()
}

func (t *Theme) buildGlobalCSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, `:root { font-size: 10px; }
body {
  font-family: %s;
  margin: 0;
  text-rendering: optimizeLegibility;
  -webkit-font-smoothing: antialiased;
  color: %s;
  min-height: 100vh;
  position: relative;
  font-size: %s;
}
h1, h2, h3, h4, h5, h6 { font-family: %s; }
h2 { font-size: 2.5rem; }
h3 { font-size: 2.4rem; }
h4 { font-size: 1.6rem; }
p { margin: 0 0 1em; }
li { line-height: 1.5em; margin-top: .5em; }
img { max-width: 100%%; height: auto; }
figcaption { padding-top: 0.5rem; text-align: center; }
code {
  font-family: %s;
  word-break: break-word;
}
pre code { word-break: normal; }
:not(pre) > code {
  padding: 2px 4px;
  margin: 0 .2rem;
  background: %s;
  color: %s;
  border: 1px solid %s;
  white-space: nowrap;
}
.code-block-wrapper {
  position: relative;
  -webkit-overflow-scrolling: touch;
}
.code-block-wrapper pre {
  padding: 1.5em 1em;
  border: 0;
  overflow: auto;
  -webkit-overflow-scrolling: touch;
}
.code-block-wrapper .code-lang {
  background: #ddd;
  color: %s;
  font-size: %s;
  font-family: %s;
  letter-spacing: %s;
  line-height: %s;
  padding: %s %s;
  position: absolute;
  left: 0;
  top: 0;
  text-align: right;
  text-transform: uppercase;
}
`,
		stack(t.Fonts.Body),
		t.Colors.Text,
		t.fontSize(2),
		stack(t.Fonts.Header),
		stack(t.Fonts.Monospace),
		t.Colors.CodeBg,
		t.Colors.CodeText,
		t.Colors.Border,
		t.Colors.TextHeader,
		t.fontSize(0),
		stack(t.Fonts.Monospace),
		t.LetterSpacings["tracked"],
		t.LineHeights["solid"],
		t.space(1), t.space(2),
	)

	langs := make([]Language, 0, len(t.Badges))
	for l := range t.Badges {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	for _, l := range langs {
		b.WriteString(badgeRule(l, t.Badges[l]))
	}

	fmt.Fprintf(&b, `.code-title {
  padding: 0.5em 1em;
  font-family: %s;
  background-color: %s;
  color: white;
  z-index: 0;
  border-top-left-radius: 0.3em;
  border-top-right-radius: 0.3em;
}
.code-title + .code-block-wrapper pre { margin-top: 0; }
`, stack(t.Fonts.Monospace), t.Colors.CodeTitle)
	return b.String()
}

func badgeRule(l Language, badge Badge) string {
	var decls []string
	if badge.Background != "" {
		decls = append(decls, "background: "+badge.Background+";")
	}
	if badge.Color != "" {
		decls = append(decls, "color: "+badge.Color+";")
	}
	if badge.FontWeight != "" {
		decls = append(decls, "font-weight: "+badge.FontWeight+";")
	}
	if len(decls) == 0 {
		return ""
	}
	return ".code-block-wrapper ." + l.Class() + " { " + strings.Join(decls, " ") + " }\n"
}

// LayoutCSS styles the shell: header, content column and footer.
func (t *Theme) LayoutCSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, `.site-header {
  padding: %s 0;
  text-align: center;
}
.site-header a {
  color: %s;
  text-decoration: none;
  font-size: %s;
}
.content {
  width: %s;
  max-width: %s;
  margin: 0 auto;
}
.site-footer {
  display: block;
  height: 6rem;
}
`, t.space(7), t.Colors.TextHeader, t.fontSize(6), t.ContentWidth, t.ContentMaxWidth)
	b.WriteString(t.Breakpoints.Tablet(".content { width: " + t.TabletWidth + "; }"))
	return b.String()
}

// PostCSS styles the post article, its header, the navigation list, summaries
// on the index and the share bar.
func (t *Theme) PostCSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, `.post { margin-top: 8rem; }
.post p { line-height: 1.8; }
.post blockquote {
  padding: 10px 20px;
  font-size: 1.75rem;
  font-style: italic;
  color: %s;
  border-left: 5px solid #eee;
  margin: 0 0 20px;
}
.post blockquote ol:last-child,
.post blockquote p:last-child,
.post blockquote ul:last-child { margin-bottom: 0; }
.post pre { margin-bottom: 2rem; }
.post h3 { line-height: 1.13; }
.post h2, .post h3, .post h4, .post h5, .post h6 { margin: 2rem 0 2rem; }
.post hr {
  border: 0;
  border-top: 0.1rem solid %s;
  display: block;
  height: 1rem;
  padding: 0;
}
.post-title { margin-bottom: 1rem; font-size: 3rem; }
.post-updated { color: %s; }
.post-body { margin: 5rem 0; }
.post-nav {
  display: flex;
  flex-wrap: wrap;
  justify-content: space-between;
  list-style: none;
  padding: 0px;
}
.post-summary { margin-bottom: %s; }
.post-summary h3 { margin-bottom: %s; }
.post-summary a { color: inherit; }
.share { display: flex; gap: %s; font-size: %s; }
`, t.Colors.Muted, t.Colors.Border, t.Colors.Text, t.space(9), t.space(1), t.space(4), t.fontSize(1))
	b.WriteString(t.Breakpoints.Phone(".post { margin-top: 4rem; }"))
	b.WriteString(t.Breakpoints.Tablet(".post-header { text-align: center; }"))
	return b.String()
}
