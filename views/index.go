package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/dates"
	"github.com/eringen/inkwell/style"
)

// Index renders the post listing inside the layout.
func Index(theme *style.Theme, data inkwell.IndexData) templ.Component {
	props := LayoutProps{Site: data.Site, Title: data.Title, Location: "/", Theme: theme}
	return Layout(props, Summaries(data.Posts))
}

// Summaries renders one summary per post, in the given order.
func Summaries(posts []inkwell.PostSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &htmlWriter{w: w}
		out.raw("<main>\n")
		if out.err != nil {
			return out.err
		}
		for _, p := range posts {
			if err := Summary(p).Render(ctx, w); err != nil {
				return err
			}
		}
		out.raw("</main>\n")
		return out.err
	})
}

// Summary renders a single index entry: linked title, date and excerpt.
func Summary(p inkwell.PostSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		day, err := dates.Format(p.Date)
		if err != nil {
			return fmt.Errorf("summary %s: %w", p.Slug, err)
		}
		long, err := dates.Long(p.Date)
		if err != nil {
			return fmt.Errorf("summary %s: %w", p.Slug, err)
		}
		out := &htmlWriter{w: w}
		out.raw(`<article class="post-summary"><header><h3><a href="`)
		out.href(p.Slug)
		out.raw(`">`)
		out.text(p.Title)
		out.raw(`</a></h3><small><time datetime="`, day, `">`, long, "</time></small></header><p>")
		out.text(p.Excerpt)
		out.raw("</p></article>\n")
		return out.err
	})
}
