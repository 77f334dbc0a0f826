//go:build unit
// +build unit

package connector

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/testutil"
)

const testPostsBaseURL = "https://posts.invalid"

func setupPostsClient(t *testing.T) *HTTPPostsClient {
	t.Helper()

	settings := &config.ExternalSettings{
		PostsBaseURL:   testPostsBaseURL,
		TimeoutSeconds: 5,
	}
	client, err := NewHTTPPostsClient(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	postsClient := client.(*HTTPPostsClient)
	httpmock.ActivateNonDefault(postsClient.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return postsClient
}

func TestHTTPPostsClient_FetchPosts(t *testing.T) {
	client := setupPostsClient(t)

	payload := []map[string]interface{}{
		{"userId": 1, "id": 1, "title": "first", "body": "first body"},
		{"userId": 2, "id": 2, "title": "second", "body": "second body"},
	}
	httpmock.RegisterResponderWithQuery("GET", testPostsBaseURL+"/posts",
		map[string]string{"_limit": "10", "_page": "1"},
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, payload)
		},
	)

	posts, err := client.FetchPosts(context.Background(), external.NewPostsQuery())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.Equal(t, "first", posts[0].Title)
	assert.Equal(t, int64(2), posts[1].UserID)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestHTTPPostsClient_FetchPosts_UserFilter(t *testing.T) {
	client := setupPostsClient(t)

	httpmock.RegisterResponderWithQuery("GET", testPostsBaseURL+"/posts",
		map[string]string{"_limit": "5", "_page": "2", "userId": "7"},
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, []map[string]interface{}{
				{"userId": 7, "id": 61, "title": "filtered", "body": "body"},
			})
		},
	)

	userID := int64(7)
	query := &external.PostsQuery{Limit: 5, Page: 2, UserID: &userID}

	posts, err := client.FetchPosts(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(7), posts[0].UserID)
}

func TestHTTPPostsClient_FetchPosts_UpstreamError(t *testing.T) {
	client := setupPostsClient(t)

	httpmock.RegisterResponder("GET", testPostsBaseURL+"/posts",
		httpmock.NewStringResponder(500, "upstream down"))

	_, err := client.FetchPosts(context.Background(), external.NewPostsQuery())
	assert.ErrorIs(t, err, external.ErrUpstream)
}

func TestHTTPPostsClient_FetchPosts_ConnectionFailure(t *testing.T) {
	client := setupPostsClient(t)

	httpmock.RegisterResponder("GET", testPostsBaseURL+"/posts",
		httpmock.ConnectionFailure)

	_, err := client.FetchPosts(context.Background(), external.NewPostsQuery())
	assert.ErrorIs(t, err, external.ErrUpstream)
}

func TestNewHTTPPostsClient_InvalidSettings(t *testing.T) {
	settings := &config.ExternalSettings{PostsBaseURL: "not-a-url", TimeoutSeconds: 5}

	_, err := NewHTTPPostsClient(settings, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
