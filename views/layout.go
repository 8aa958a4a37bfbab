package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/style"
)

// LayoutProps configure the page shell.
type LayoutProps struct {
	Site     inkwell.SiteMetadata
	Title    string // page title, prepended to the site title in <title>
	Location string // path of the page being rendered
	Theme    *style.Theme
}

func (p LayoutProps) documentTitle() string {
	if p.Title == "" || p.Title == p.Site.Title {
		return p.Site.Title
	}
	return p.Title + " | " + p.Site.Title
}

// Layout wraps children in the document shell: header, content column,
// footer and the theme's stylesheet. Children are required.
func Layout(p LayoutProps, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if children == nil {
			return fmt.Errorf("layout %s: children: %w", p.Location, inkwell.ErrMissingContent)
		}
		theme := p.Theme
		if theme == nil {
			theme = style.Default()
		}
		lang := p.Site.Lang
		if lang == "" {
			lang = "en"
		}

		out := &htmlWriter{w: w}
		out.raw("<!DOCTYPE html>\n<html lang=\"")
		out.text(lang)
		out.raw("\">\n<head>\n<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>")
		out.text(p.documentTitle())
		out.raw("</title>\n<link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\" title=\"")
		out.text(p.Site.Title)
		out.raw("\">\n<style>\n", theme.Stylesheet(), "</style>\n</head>\n<body>\n")
		if out.err != nil {
			return out.err
		}
		if err := Header(p.Site.Title).Render(ctx, w); err != nil {
			return err
		}
		out.raw(`<div class="content">`)
		if out.err != nil {
			return out.err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		out.raw("</div>\n<footer class=\"site-footer\"></footer>\n</body>\n</html>\n")
		return out.err
	})
}

// Header renders the site title linking home.
func Header(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &htmlWriter{w: w}
		out.raw(`<header class="site-header"><a href="/">`)
		out.text(title)
		out.raw("</a></header>\n")
		return out.err
	})
}
