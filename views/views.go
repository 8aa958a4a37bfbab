// Package views is the default set of page components for inkwell sites.
package views

import (
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/style"
)

// Options configure the default views.
type Options struct {
	Theme    *style.Theme
	Comments inkwell.CommentsConfig
}

// Funcs returns the default ViewFuncs. A nil theme selects style.Default.
func Funcs(opts Options) inkwell.ViewFuncs {
	theme := opts.Theme
	if theme == nil {
		theme = style.Default()
	}
	return inkwell.ViewFuncs{
		Index: func(data inkwell.IndexData) templ.Component {
			return Index(theme, data)
		},
		Post: func(data inkwell.PostData) templ.Component {
			return Post(theme, opts.Comments, data)
		},
		NotFound: func(site inkwell.SiteMetadata) templ.Component {
			return NotFound(theme, site)
		},
		ServerError: func(site inkwell.SiteMetadata) templ.Component {
			return ServerError(theme, site)
		},
	}
}

// htmlWriter writes markup and remembers the first error, so a component can
// emit a run of fragments and check once.
type htmlWriter struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// text writes s escaped for element content or a quoted attribute.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// href writes a sanitized, escaped URL.
func (h *htmlWriter) href(u string) {
	h.text(string(templ.URL(u)))
}
