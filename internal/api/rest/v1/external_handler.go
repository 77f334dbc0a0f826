package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/external"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/utils"
)

// ExternalHandler defines the interface for handling proxied external requests
type ExternalHandler interface {
	ListPosts(ctx *gin.Context)
}

// externalHandler struct holds the services
type externalHandler struct {
	postsService external.PostsService
}

// NewExternalHandler creates a new ExternalHandler
func NewExternalHandler(postsService external.PostsService) ExternalHandler {
	return &externalHandler{
		postsService: postsService,
	}
}

// ListPosts handles the GET request to fetch posts from the external API
// @Summary List posts from the external API
// @Description Fetch one page of posts from the upstream service, optionally filtered by author.
// @Tags External
// @Produce json
// @Param limit query int false "How many posts to return" default(10)
// @Param page query int false "Page number" default(1)
// @Param user_id query int false "Author filter (userId upstream)"
// @Success 200 {array} PostResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /external/posts [get]
func (handler *externalHandler) ListPosts(ctx *gin.Context) {
	query := external.NewPostsQuery()

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if page := ctx.Query("page"); len(page) > 0 {
		query.Page = utils.ConvertToInt(page)
	}

	if userID := ctx.Query("user_id"); len(userID) > 0 {
		id := utils.ConvertToInt64(userID)
		query.UserID = &id
	}

	if err := query.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	posts, err := handler.postsService.ListPosts(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPostResponses(posts))
}
