package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/stagedoor/theatre-api/internal/api/handler/v1/response"
	"github.com/stagedoor/theatre-api/internal/api/middleware"
)

// getUserID pulls the authenticated user's ID set by the JWT middleware.
func getUserID(ctx *gin.Context) (uint, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return 0, response.ErrUnauthorized("missing authentication")
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, response.ErrUnauthorized("invalid authentication")
	}

	return userID, nil
}
