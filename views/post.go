package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/dates"
	"github.com/eringen/inkwell/style"
)

// UpdatedLabel prefixes the post date.
const UpdatedLabel = "Last updated:"

// Post renders a full post page inside the layout. Each render mounts its
// own comment widget.
func Post(theme *style.Theme, comments inkwell.CommentsConfig, data inkwell.PostData) templ.Component {
	props := LayoutProps{Site: data.Site, Title: data.Post.Title, Location: data.Post.Slug, Theme: theme}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mount := NewCommentMount(comments)
		return Layout(props, Article(data, mount)).Render(ctx, w)
	})
}

// Article renders the post body, share bar, navigation and comment section.
// The body HTML is written verbatim.
func Article(data inkwell.PostData, mount *CommentMount) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		post := data.Post
		if strings.TrimSpace(post.HTML) == "" {
			return fmt.Errorf("post %s: body: %w", post.Slug, inkwell.ErrMissingContent)
		}
		updated, err := dates.Format(post.Date)
		if err != nil {
			return fmt.Errorf("post %s: %w", post.Slug, err)
		}

		out := &htmlWriter{w: w}
		out.raw("<article class=\"post\">\n<header class=\"post-header\"><h1 class=\"post-title\">")
		out.text(post.Title)
		out.raw("</h1><sub class=\"post-updated\"><span>", UpdatedLabel, " ", updated, "</span></sub></header>\n")
		out.raw("<div class=\"post-body\">", post.HTML, "</div>\n")
		if out.err != nil {
			return out.err
		}

		share := Share(ShareProps{
			Title:   post.Title,
			Excerpt: post.Excerpt,
			Author:  data.Site.Author,
			URL:     inkwell.BuildURL(data.Site.URL, post.Slug),
		})
		if err := share.Render(ctx, w); err != nil {
			return err
		}
		if err := Nav(data.Previous, data.Next).Render(ctx, w); err != nil {
			return err
		}
		if mount != nil {
			if err := mount.Component().Render(ctx, w); err != nil {
				return err
			}
		}
		out.raw("</article>\n")
		return out.err
	})
}

// Nav renders the previous/next list. A nil link leaves its slot empty.
func Nav(previous, next *inkwell.NavLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &htmlWriter{w: w}
		out.raw(`<ul class="post-nav"><li>`)
		if previous != nil {
			out.raw(`<a href="`)
			out.href(previous.Slug)
			out.raw(`" rel="prev">← `)
			out.text(previous.Title)
			out.raw(`</a>`)
		}
		out.raw(`</li><li>`)
		if next != nil {
			out.raw(`<a href="`)
			out.href(next.Slug)
			out.raw(`" rel="next">`)
			out.text(next.Title)
			out.raw(` →</a>`)
		}
		out.raw("</li></ul>\n")
		return out.err
	})
}
