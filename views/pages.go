package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/style"
)

// NotFound is the 404 page.
func NotFound(theme *style.Theme, site inkwell.SiteMetadata) templ.Component {
	return message(theme, site, "Not Found", "You just hit a route that doesn't exist.")
}

// ServerError is the 500 page.
func ServerError(theme *style.Theme, site inkwell.SiteMetadata) templ.Component {
	return message(theme, site, "Something went wrong", "The page could not be rendered. Check the server log.")
}

func message(theme *style.Theme, site inkwell.SiteMetadata, title, body string) templ.Component {
	props := LayoutProps{Site: site, Title: title, Theme: theme}
	return Layout(props, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &htmlWriter{w: w}
		out.raw(`<main class="message"><h1>`)
		out.text(title)
		out.raw(`</h1><p>`)
		out.text(body)
		out.raw(`</p><p><a href="/">Home</a></p></main>`, "\n")
		return out.err
	}))
}
