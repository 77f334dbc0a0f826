package connector

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// HTTPPostsClient fetches posts from the upstream JSONPlaceholder-style
// service. Pagination and the user filter travel as the _limit, _page and
// userId query parameters the upstream expects.
type HTTPPostsClient struct {
	client *resty.Client
	logger logger.Logger
}

// NewHTTPPostsClient creates a new HTTP-based PostsClient implementation
func NewHTTPPostsClient(settings *config.ExternalSettings, logger logger.Logger) (external.PostsClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid external settings: %w", err)
	}

	client := resty.New().
		SetBaseURL(settings.PostsBaseURL).
		SetTimeout(time.Duration(settings.TimeoutSeconds) * time.Second)

	return &HTTPPostsClient{
		client: client,
		logger: logger,
	}, nil
}

func (c *HTTPPostsClient) FetchPosts(ctx context.Context, query *external.PostsQuery) ([]*external.Post, error) {
	var posts []*external.Post

	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("_limit", strconv.Itoa(query.Limit)).
		SetQueryParam("_page", strconv.Itoa(query.Page)).
		SetResult(&posts)
	if query.UserID != nil {
		req.SetQueryParam("userId", strconv.FormatInt(*query.UserID, 10))
	}

	resp, err := req.Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", external.ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", external.ErrUpstream, resp.StatusCode())
	}

	c.logger.Debug("Fetched ", len(posts), " posts from upstream")
	return posts, nil
}
