package app

import (
	"context"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// postsService implements the PostsService interface for the posts proxy
type postsService struct {
	client external.PostsClient
	logger logger.Logger
}

// NewPostsService creates a new instance of PostsService
func NewPostsService(client external.PostsClient, logger logger.Logger) (external.PostsService, error) {
	return &postsService{
		client: client,
		logger: logger,
	}, nil
}

// ListPosts fetches posts from the upstream service with paging and an
// optional author filter applied upstream.
func (s *postsService) ListPosts(ctx context.Context, query *external.PostsQuery) ([]*external.Post, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return s.client.FetchPosts(ctx, query)
}
