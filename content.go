package inkwell

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/inkwell/dates"
	"github.com/eringen/inkwell/markdown"
)

// postNamespace seeds the name-based post IDs so they are stable across builds.
var postNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/eringen/inkwell/post"))

// frontMatter is the metadata block at the top of a post source.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Draft       bool     `yaml:"draft,omitempty"`
	Slug        string   `yaml:"slug,omitempty"`
}

// Converter turns Markdown into HTML.
type Converter interface {
	Convert(src []byte) (string, error)
}

// LoadPosts reads every Markdown file below dir and returns the published
// posts sorted newest first. Any malformed post fails the whole load.
func LoadPosts(dir string, conv Converter, excerptLength int) ([]Post, error) {
	posts, _, err := loadContent(dir, conv, excerptLength)
	return posts, err
}

// loadContent is LoadPosts that also reports the directories of draft
// posts, slash-separated and relative to dir, so their files stay private.
func loadContent(dir string, conv Converter, excerptLength int) (posts []Post, draftDirs []string, err error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, nil, fmt.Errorf("content dir %s: %w", dir, err)
	}
	// "/" belongs to the index page.
	seen := map[string]string{"/": "the index page"}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		post, draft, err := parsePost(src, rel, conv, excerptLength)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if draft {
			if strings.EqualFold(filepath.Base(rel), "index.md") && filepath.Dir(rel) != "." {
				draftDirs = append(draftDirs, filepath.ToSlash(filepath.Dir(rel)))
			}
			return nil
		}
		post.Source = path
		if prev, ok := seen[post.Slug]; ok {
			return fmt.Errorf("%s and %s: %w %q", prev, path, ErrDuplicateSlug, post.Slug)
		}
		seen[post.Slug] = path
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load posts: %w", err)
	}
	SortPosts(posts)
	return posts, draftDirs, nil
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

// parsePost builds a Post from one source file. rel is the slash-separated
// path relative to the content root.
func parsePost(src []byte, rel string, conv Converter, excerptLength int) (Post, bool, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &fm)
	if err != nil {
		return Post{}, false, fmt.Errorf("front matter: %w", err)
	}
	if fm.Draft {
		return Post{}, true, nil
	}
	date, err := dates.Parse(fm.Date)
	if err != nil {
		return Post{}, false, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Post{}, false, fmt.Errorf("post body: %w", ErrMissingContent)
	}
	html, err := conv.Convert(body)
	if err != nil {
		return Post{}, false, err
	}

	slug := SlugFromPath(rel)
	if fm.Slug != "" {
		slug = normalizeSlug(fm.Slug)
	}
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = titleFromSlug(slug)
	}
	excerpt := strings.TrimSpace(fm.Description)
	if excerpt == "" {
		excerpt = markdown.Excerpt(html, excerptLength)
	}

	return Post{
		ID:      uuid.NewSHA1(postNamespace, []byte(slug)).String(),
		Slug:    slug,
		Title:   title,
		Date:    date,
		Excerpt: excerpt,
		HTML:    html,
		Tags:    FilterEmpty(fm.Tags),
	}, false, nil
}

// SlugFromPath maps a source path relative to the content root onto its URL:
// "hello/index.md" and "hello.md" both become "/hello/".
func SlugFromPath(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
	rel = strings.TrimSuffix(rel, "/index")
	if rel == "index" {
		rel = ""
	}
	return normalizeSlug(rel)
}

func normalizeSlug(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return "/"
	}
	return "/" + s + "/"
}

// titleFromSlug title-cases the last path segment, e.g. "/my-first_post/" -> "My First Post".
func titleFromSlug(slug string) string {
	base := strings.Trim(slug, "/")
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}

// SortPosts orders posts newest first. Equal dates fall back to slug order so
// the sequence is the same on every build.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// Neighbors returns the navigation links for the post at index i of a list
// sorted by SortPosts: previous is the next-older post, next the next-newer.
func Neighbors(posts []Post, i int) (previous, next *NavLink) {
	if i < 0 || i >= len(posts) {
		return nil, nil
	}
	if i+1 < len(posts) {
		previous = posts[i+1].Link()
	}
	if i > 0 {
		next = posts[i-1].Link()
	}
	return previous, next
}
