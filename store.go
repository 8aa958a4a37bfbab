package inkwell

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding the content index the page queries
// read from. It is rebuilt from the Markdown sources on every build.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the preview server read while the watcher reindexes; writers
	// wait on the busy timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    id TEXT NOT NULL,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    utc_offset INTEGER NOT NULL,
    excerpt TEXT NOT NULL,
    html TEXT NOT NULL,
    tags TEXT NOT NULL,
    source TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS posts_date ON posts (date DESC, slug ASC);
`)
	return err
}

// dateLayout keeps stored dates lexically sortable. The source offset is
// kept in its own column so pages show the author's calendar day.
const dateLayout = "2006-01-02T15:04:05.000000000Z"

func encodeDate(t time.Time) (string, int) {
	_, offset := t.Zone()
	return t.UTC().Format(dateLayout), offset
}

func decodeDate(s string, offset int) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("stored date %q: %w", s, err)
	}
	if offset == 0 {
		return t, nil
	}
	return t.In(time.FixedZone("", offset)), nil
}

// ReplacePosts swaps the whole index for posts in one transaction, so readers
// never observe a half-built index.
func (s *Store) ReplacePosts(ctx context.Context, posts []Post) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO posts (slug, id, title, date, utc_offset, excerpt, html, tags, source) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range posts {
		date, offset := encodeDate(p.Date)
		if _, err := stmt.ExecContext(ctx, p.Slug, p.ID, p.Title, date, offset, p.Excerpt, p.HTML, joinTagColumn(p.Tags), p.Source); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				return fmt.Errorf("%w %q", ErrDuplicateSlug, p.Slug)
			}
			return err
		}
	}
	return tx.Commit()
}

// ListPosts returns index entries ordered by date descending, then slug.
func (s *Store) ListPosts(ctx context.Context) ([]PostSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, slug, title, date, utc_offset, excerpt FROM posts ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []PostSummary
	for rows.Next() {
		var p PostSummary
		var date string
		var offset int
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &date, &offset, &p.Excerpt); err != nil {
			return nil, err
		}
		if p.Date, err = decodeDate(date, offset); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by slug.
func (s *Store) GetPost(ctx context.Context, slug string) (Post, error) {
	p := Post{Slug: slug}
	var date, tags string
	var offset int
	err := s.db.QueryRowContext(ctx, `SELECT id, title, date, utc_offset, excerpt, html, tags, source FROM posts WHERE slug = ?`, slug).
		Scan(&p.ID, &p.Title, &date, &offset, &p.Excerpt, &p.HTML, &tags, &p.Source)
	if err != nil {
		return Post{}, err
	}
	if p.Date, err = decodeDate(date, offset); err != nil {
		return Post{}, err
	}
	p.Tags = ParseTags(tags)
	return p, nil
}

// Neighbors returns the posts on either side of slug in index order:
// previous is older, next is newer. Either may be nil.
func (s *Store) Neighbors(ctx context.Context, slug string) (previous, next *NavLink, err error) {
	var date string
	if err := s.db.QueryRowContext(ctx, `SELECT date FROM posts WHERE slug = ?`, slug).Scan(&date); err != nil {
		return nil, nil, err
	}
	previous, err = s.neighbor(ctx, `SELECT slug, title FROM posts WHERE date < ? OR (date = ? AND slug > ?) ORDER BY date DESC, slug ASC LIMIT 1`, date, slug)
	if err != nil {
		return nil, nil, err
	}
	next, err = s.neighbor(ctx, `SELECT slug, title FROM posts WHERE date > ? OR (date = ? AND slug < ?) ORDER BY date ASC, slug DESC LIMIT 1`, date, slug)
	if err != nil {
		return nil, nil, err
	}
	return previous, next, nil
}

func (s *Store) neighbor(ctx context.Context, query, date, slug string) (*NavLink, error) {
	var l NavLink
	err := s.db.QueryRowContext(ctx, query, date, date, slug).Scan(&l.Slug, &l.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// joinTagColumn stores tags as ",go,web," so a single tag can be matched with instr.
func joinTagColumn(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	normalized := make([]string, len(tags))
	for i, t := range tags {
		normalized[i] = normalizeTag(t)
	}
	return "," + strings.Join(normalized, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
