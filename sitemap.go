package inkwell

import (
	"encoding/xml"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/inkwell/dates"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap encodes a sitemap listing the home page and every post.
func WriteSitemap(w io.Writer, base string, posts []PostSummary) error {
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for _, p := range posts {
		lastMod, err := dates.Format(p.Date)
		if err != nil {
			return err
		}
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, p.Slug),
			LastMod: lastMod,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}

func (a *App) renderSitemap(c echo.Context, posts []PostSummary) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), a.Config.URL, posts)
}
