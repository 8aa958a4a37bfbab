package markdown

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Ellipsis terminates a pruned excerpt.
const Ellipsis = "…"

// PlainText strips markup from rendered HTML and collapses whitespace.
// Block elements separate words; inline elements do not, so
// "<em>post</em>." stays "post.". Script and style contents are dropped.
func PlainText(htmlSrc string) string {
	z := html.NewTokenizer(strings.NewReader(htmlSrc))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the text so far is all we get.
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if isSkipped(string(name)) {
				skip++
			}
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkipped(string(name)) && skip > 0 {
				skip--
			}
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// blockTags end a run of text.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "img": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "td": true, "th": true, "tr": true, "ul": true,
}

func isSkipped(tag string) bool {
	return tag == "script" || tag == "style"
}

// Prune shortens text to at most n runes, cutting at the last word boundary
// and appending Ellipsis. Text that already fits is returned unchanged.
func Prune(text string, n int) string {
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	cut := runes[:n]
	// Cut inside a word only when the first word alone exceeds n.
	if !unicode.IsSpace(runes[n]) {
		for i := len(cut) - 1; i > 0; i-- {
			if unicode.IsSpace(cut[i]) {
				cut = cut[:i]
				break
			}
		}
	}
	return strings.TrimRightFunc(string(cut), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}) + Ellipsis
}

// Excerpt returns the pruned plain text of rendered HTML.
func Excerpt(htmlSrc string, n int) string {
	return Prune(PlainText(htmlSrc), n)
}
