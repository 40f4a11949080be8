package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
)

// writeError maps domain error kinds to statuses. Auth failures share one
// uniform detail each; templated kinds carry the offending value already
// rendered into the error message.
func writeError(c *gin.Context, err error) {
	switch {
	case customErrors.IsInvalidCredentials(err):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid login or password"})
	case customErrors.IsInvalidToken(err):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
	case customErrors.IsInactiveUser(err):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "user is inactive"})
	case customErrors.IsNoPrivileges(err):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "not enough privileges"})
	case customErrors.IsUnknownRole(err), customErrors.IsUnknownStatus(err), customErrors.IsInvalidArgument(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case customErrors.IsNotFound(err):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case customErrors.IsAlreadyExists(err):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": err.Error()})
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
