//go:build unit
// +build unit

package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostsQuery_Defaults(t *testing.T) {
	query := NewPostsQuery()

	assert.Equal(t, PostsLimitDefault, query.Limit)
	assert.Equal(t, PostsPageDefault, query.Page)
	assert.Nil(t, query.UserID)
	assert.NoError(t, query.Validate())
}

func TestPostsQuery_Validate(t *testing.T) {
	userID := int64(3)

	tests := []struct {
		name    string
		query   *PostsQuery
		wantErr bool
	}{
		{"valid with filter", &PostsQuery{Limit: 5, Page: 2, UserID: &userID}, false},
		{"limit below one", &PostsQuery{Limit: 0, Page: 1}, true},
		{"limit above max", &PostsQuery{Limit: PostsLimitMax + 1, Page: 1}, true},
		{"page below one", &PostsQuery{Limit: 10, Page: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
