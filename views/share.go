package views

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// ShareProps is the input of the share bar.
type ShareProps struct {
	Title   string
	Excerpt string
	Author  string
	URL     string
}

func (p ShareProps) text() string {
	if p.Author == "" {
		return p.Title
	}
	return p.Title + " by " + p.Author
}

type shareTarget struct {
	name  string
	class string
	href  func(ShareProps) string
}

var shareTargets = []shareTarget{
	{"Twitter", "share-twitter", func(p ShareProps) string {
		return "https://twitter.com/intent/tweet?" + url.Values{"text": {p.text()}, "url": {p.URL}}.Encode()
	}},
	{"Facebook", "share-facebook", func(p ShareProps) string {
		return "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {p.URL}}.Encode()
	}},
	{"Weibo", "share-weibo", func(p ShareProps) string {
		return "https://service.weibo.com/share/share.php?" + url.Values{"title": {p.text()}, "url": {p.URL}}.Encode()
	}},
	{"Email", "share-email", func(p ShareProps) string {
		body := strings.TrimSpace(p.Excerpt + "\n\n" + p.URL)
		return "mailto:?" + strings.ReplaceAll(url.Values{"subject": {p.text()}, "body": {body}}.Encode(), "+", "%20")
	}},
}

// Share renders links that share the post on a few services.
func Share(p ShareProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &htmlWriter{w: w}
		out.raw(`<div class="share" aria-label="Share">`)
		for _, t := range shareTargets {
			out.raw(`<a class="`, t.class, `" href="`)
			out.href(t.href(p))
			out.raw(`" target="_blank" rel="noopener noreferrer">`, t.name, `</a>`)
		}
		out.raw("</div>\n")
		return out.err
	})
}
