package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
)

// SubjectContextKey is the gin context key the authenticated user ID is
// stored under.
const SubjectContextKey = "authSubject"

// JWTAuthMiddleware guards a route group with bearer access tokens. The
// decoded subject is stored on the context for handlers that need it.
func JWTAuthMiddleware(authService auth.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodOptions {
			ctx.Next()
			return
		}

		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.Header("WWW-Authenticate", challengeBearer)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
			return
		}

		payload, err := authService.VerifyAccess(ctx.Request.Context(), token)
		if err != nil {
			respondError(ctx, err)
			ctx.Abort()
			return
		}

		ctx.Set(SubjectContextKey, payload.Subject)
		ctx.Next()
	}
}

// bearerToken extracts the token from an Authorization header. The scheme
// is matched case-insensitively, like the OAuth2 spec asks.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
