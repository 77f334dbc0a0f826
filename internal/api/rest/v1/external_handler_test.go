//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
)

func TestExternalHandler_ListPosts_Success(t *testing.T) {
	mockPostsService := new(MockPostsService)
	handler := NewExternalHandler(mockPostsService)

	posts := []*external.Post{
		{UserID: 1, ID: 1, Title: "first", Body: "body"},
	}
	mockPostsService.
		On("ListPosts", mock.Anything, mock.MatchedBy(func(query *external.PostsQuery) bool {
			return query.Limit == 10 && query.Page == 1 && query.UserID == nil
		})).
		Return(posts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/external/posts", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListPosts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"first"`)

	// The upstream field name is passed through untouched
	assert.Contains(t, w.Body.String(), `"userId":1`)
	mockPostsService.AssertExpectations(t)
}

func TestExternalHandler_ListPosts_WithFilters(t *testing.T) {
	mockPostsService := new(MockPostsService)
	handler := NewExternalHandler(mockPostsService)

	mockPostsService.
		On("ListPosts", mock.Anything, mock.MatchedBy(func(query *external.PostsQuery) bool {
			return query.Limit == 5 && query.Page == 2 &&
				query.UserID != nil && *query.UserID == 7
		})).
		Return([]*external.Post{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/external/posts?limit=5&page=2&user_id=7", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListPosts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	mockPostsService.AssertExpectations(t)
}

func TestExternalHandler_ListPosts_InvalidLimit(t *testing.T) {
	mockPostsService := new(MockPostsService)
	handler := NewExternalHandler(mockPostsService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/external/posts?limit=200", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListPosts(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockPostsService.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything)
}

func TestExternalHandler_ListPosts_UpstreamDown(t *testing.T) {
	mockPostsService := new(MockPostsService)
	handler := NewExternalHandler(mockPostsService)

	mockPostsService.
		On("ListPosts", mock.Anything, mock.Anything).
		Return(nil, external.ErrUpstream)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/external/posts", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListPosts(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "external posts service unavailable")
}
