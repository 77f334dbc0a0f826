package external

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults for the posts listing, matching the upstream API conventions.
const (
	PostsLimitDefault = 10
	PostsLimitMax     = 100
	PostsPageDefault  = 1
)

// Post is a single entry returned by the external posts API. Field names
// follow the upstream JSON shape.
type Post struct {
	UserID int64  `json:"userId"`
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// PostsQuery selects a page of posts from the upstream API.
type PostsQuery struct {
	Limit  int    `validate:"min=1,max=100"`
	Page   int    `validate:"min=1"`
	UserID *int64 `validate:"omitnil,min=1"`
}

// NewPostsQuery constructs a PostsQuery with upstream defaults.
func NewPostsQuery() *PostsQuery {
	return &PostsQuery{
		Limit: PostsLimitDefault,
		Page:  PostsPageDefault,
	}
}

// Validate for validating PostsQuery struct
func (q *PostsQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
