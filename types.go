package inkwell

import "time"

// SiteMetadata is the site-wide data every page query receives.
type SiteMetadata struct {
	Title       string
	Author      string
	Description string
	URL         string
	Lang        string
}

// Post is one rendered source document.
type Post struct {
	ID      string
	Slug    string // URL path, e.g. "/hello-world/"
	Title   string
	Date    time.Time
	Excerpt string
	HTML    string // trusted output of the Markdown renderer
	Tags    []string
	Source  string // path of the Markdown file
}

// Summary projects a post onto the fields the index page shows.
func (p Post) Summary() PostSummary {
	return PostSummary{
		ID:      p.ID,
		Slug:    p.Slug,
		Title:   p.Title,
		Date:    p.Date,
		Excerpt: p.Excerpt,
	}
}

// Link returns a navigation link pointing at p.
func (p Post) Link() *NavLink {
	return &NavLink{Slug: p.Slug, Title: p.Title}
}

// PostSummary is an index page entry.
type PostSummary struct {
	ID      string
	Slug    string
	Title   string
	Date    time.Time
	Excerpt string
}

// NavLink references a neighbouring post. A nil *NavLink means there is none.
type NavLink struct {
	Slug  string
	Title string
}

// IndexData is the result of the index page query.
type IndexData struct {
	Site  SiteMetadata
	Title string
	Posts []PostSummary
}

// PostData is the result of the post page query.
type PostData struct {
	Site     SiteMetadata
	Post     Post
	Previous *NavLink // next-older post
	Next     *NavLink // next-newer post
}
