package external

import (
	"context"
	"errors"
)

// ErrUpstream indicates that the external posts API could not be reached
// or answered with an error status.
var ErrUpstream = errors.New("external posts service unavailable")

// PostsService returns posts fetched from the external API.
type PostsService interface {
	// ListPosts retrieves one page of posts considering the query's limit,
	// page and optional author filter.
	ListPosts(ctx context.Context, query *PostsQuery) ([]*Post, error)
}

// PostsClient is the transport used to reach the external posts API.
type PostsClient interface {
	FetchPosts(ctx context.Context, query *PostsQuery) ([]*Post, error)
}
