package inkwell

import (
	"context"
	"fmt"
)

// IndexTitle is the page title of the post listing.
const IndexTitle = "All Posts"

// QueryIndex gathers the data for the index page.
func QueryIndex(ctx context.Context, src Source, site SiteMetadata) (IndexData, error) {
	posts, err := src.ListPosts(ctx)
	if err != nil {
		return IndexData{}, fmt.Errorf("query index: %w", err)
	}
	return IndexData{Site: site, Title: IndexTitle, Posts: posts}, nil
}

// QueryPost gathers the data for one post page.
func QueryPost(ctx context.Context, src Source, site SiteMetadata, slug string) (PostData, error) {
	post, err := src.GetPost(ctx, slug)
	if err != nil {
		return PostData{}, fmt.Errorf("query post %s: %w", slug, err)
	}
	previous, next, err := src.Neighbors(ctx, slug)
	if err != nil {
		return PostData{}, fmt.Errorf("query neighbors of %s: %w", slug, err)
	}
	return PostData{Site: site, Post: post, Previous: previous, Next: next}, nil
}
