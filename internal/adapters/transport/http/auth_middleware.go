package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/jwt"
	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
)

const currentUserKey = "auth.current_user"

// requireAccess resolves the caller's identity exactly once per request
// and hands it to handlers through the context; handlers never decode
// tokens themselves.
func (r *Router) requireAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c, jwt.AccessTokenType)
		if raw == "" {
			writeError(c, customErrors.ErrInvalidToken)
			return
		}
		user, err := r.auth.ResolveAccess(c.Request.Context(), raw)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func (r *Router) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c, jwt.AccessTokenType)
		if raw == "" {
			writeError(c, customErrors.ErrInvalidToken)
			return
		}
		user, err := r.auth.ResolveAdmin(c.Request.Context(), raw)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) model.User {
	return c.MustGet(currentUserKey).(model.User)
}
