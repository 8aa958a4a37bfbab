package inkwell

import (
	"context"
	"sync"
	"time"
)

// Source is the data layer the page queries run against. Store and PostCache
// both implement it.
type Source interface {
	ListPosts(ctx context.Context) ([]PostSummary, error)
	GetPost(ctx context.Context, slug string) (Post, error)
	Neighbors(ctx context.Context, slug string) (previous, next *NavLink, err error)
}

// PostCache is an in-memory cache of the content index with a TTL. The
// preview server reads through it; the watcher invalidates it on reindex.
type PostCache struct {
	mu      sync.RWMutex
	list    []PostSummary
	index   map[string]int
	posts   map[string]Post
	fetched time.Time
	gen     uint64 // bumped whenever list and posts are replaced
	ttl     time.Duration
	store   Source
}

// NewPostCache creates a PostCache backed by the given Source.
func NewPostCache(s Source, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.list != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.list = nil
	c.index = nil
	c.posts = nil
	c.gen++
	c.mu.Unlock()
}

func (c *PostCache) load(ctx context.Context) error {
	if c.valid() {
		return nil
	}
	list, err := c.store.ListPosts(ctx)
	if err != nil {
		return err
	}
	if list == nil {
		list = []PostSummary{}
	}
	index := make(map[string]int, len(list))
	for i, p := range list {
		index[p.Slug] = i
	}
	c.list = list
	c.index = index
	c.posts = make(map[string]Post)
	c.fetched = time.Now()
	c.gen++
	return nil
}

// ensureLoaded returns the cached list and slug index after ensuring the
// cache is fresh. It tries a read lock first; only takes a write lock if a
// reload is needed.
func (c *PostCache) ensureLoaded(ctx context.Context) ([]PostSummary, map[string]int, error) {
	c.mu.RLock()
	if c.valid() {
		list, index := c.list, c.index
		c.mu.RUnlock()
		return list, index, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, nil, err
	}
	return c.list, c.index, nil
}

// ListPosts returns the cached index entries.
func (c *PostCache) ListPosts(ctx context.Context) ([]PostSummary, error) {
	list, _, err := c.ensureLoaded(ctx)
	return list, err
}

// GetPost returns a post by slug, loading its body from the store on first use.
func (c *PostCache) GetPost(ctx context.Context, slug string) (Post, error) {
	_, index, err := c.ensureLoaded(ctx)
	if err != nil {
		return Post{}, err
	}
	if _, ok := index[slug]; !ok {
		return Post{}, ErrNotFound
	}

	c.mu.RLock()
	p, ok := c.posts[slug]
	gen := c.gen
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err = c.store.GetPost(ctx, slug)
	if err != nil {
		return Post{}, err
	}
	// A reload in the meantime may have replaced the body; keep the read
	// out of the fresh map.
	c.mu.Lock()
	if c.posts != nil && c.gen == gen {
		c.posts[slug] = p
	}
	c.mu.Unlock()
	return p, nil
}

// Neighbors derives navigation links from the cached order.
func (c *PostCache) Neighbors(ctx context.Context, slug string) (previous, next *NavLink, err error) {
	list, index, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, nil, err
	}
	i, ok := index[slug]
	if !ok {
		return nil, nil, ErrNotFound
	}
	if i+1 < len(list) {
		previous = &NavLink{Slug: list[i+1].Slug, Title: list[i+1].Title}
	}
	if i > 0 {
		next = &NavLink{Slug: list[i-1].Slug, Title: list[i-1].Title}
	}
	return previous, next, nil
}
