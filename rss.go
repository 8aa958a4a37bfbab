package inkwell

import (
	"encoding/xml"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// WriteFeed encodes an RSS 2.0 feed of posts to w.
func WriteFeed(w io.Writer, site SiteMetadata, posts []PostSummary) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := BuildURL(site.URL, p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			PubDate:     p.Date.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Title,
			Link:        BuildURL(site.URL),
			Description: site.Description,
			Language:    site.Lang,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(feed)
}

func (a *App) renderRSS(c echo.Context, posts []PostSummary) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteFeed(c.Response(), a.Config.Site(), posts)
}
