package inkwell

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com/", []string{"/hello/"}, "https://example.com/hello/"},
		{"https://example.com/blog", []string{"/a/b/"}, "https://example.com/blog/a/b/"},
		{"http://localhost:8000", []string{"x"}, "http://localhost:8000/x/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Go 1.24: What's New?  ", "go-1-24-what-s-new"},
		{"---", ""},
		{"Ünïcode Café", "unicode-cafe"},
		{"日本語", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{" go ", "", "  ", "web"})
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("unexpected result %v", got)
	}
	if FilterEmpty(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestWriteFeed(t *testing.T) {
	site := SiteMetadata{Title: "Blog", URL: "https://example.com", Description: "d", Lang: "en"}
	posts := []PostSummary{
		{Slug: "/a/", Title: "A & B", Date: testDate("2020-01-02"), Excerpt: "x"},
	}
	var buf bytes.Buffer
	if err := WriteFeed(&buf, site, posts); err != nil {
		t.Fatal(err)
	}

	var feed rssXML
	if err := xml.Unmarshal(buf.Bytes(), &feed); err != nil {
		t.Fatalf("feed is not valid XML: %v", err)
	}
	if feed.Version != "2.0" || len(feed.Channel.Items) != 1 {
		t.Fatalf("unexpected feed %+v", feed)
	}
	item := feed.Channel.Items[0]
	if item.Title != "A & B" || item.Link != "https://example.com/a/" {
		t.Errorf("unexpected item %+v", item)
	}
	if !strings.HasPrefix(item.PubDate, "Thu, 02 Jan 2020") {
		t.Errorf("unexpected pubDate %q", item.PubDate)
	}
}

func TestWriteSitemap(t *testing.T) {
	var buf bytes.Buffer
	posts := []PostSummary{{Slug: "/a/", Date: testDate("2020-01-02")}}
	if err := WriteSitemap(&buf, "https://example.com", posts); err != nil {
		t.Fatal(err)
	}
	var sm sitemapURLSet
	if err := xml.Unmarshal(buf.Bytes(), &sm); err != nil {
		t.Fatalf("sitemap is not valid XML: %v", err)
	}
	if len(sm.URLs) != 2 {
		t.Fatalf("expected home and one post, got %d urls", len(sm.URLs))
	}
	if sm.URLs[1].Loc != "https://example.com/a/" || sm.URLs[1].LastMod != "2020-01-02" {
		t.Errorf("unexpected entry %+v", sm.URLs[1])
	}

	if err := WriteSitemap(&buf, "https://example.com", []PostSummary{{Slug: "/b/"}}); err == nil {
		t.Error("expected error for post without date")
	}
}

func TestIsAsset(t *testing.T) {
	for path, want := range map[string]bool{
		"/img/a.png": true,
		"/a/":        false,
		"/feed.xml":  false,
	} {
		if got := isAsset(path); got != want {
			t.Errorf("isAsset(%q) = %v, want %v", path, got, want)
		}
	}
}
