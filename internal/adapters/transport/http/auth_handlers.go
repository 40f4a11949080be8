package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/jwt"
	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
)

// login accepts form-encoded credentials and answers with the token pair
// in the body plus both cookies. Every failure looks the same to the
// caller.
func (r *Router) login(c *gin.Context) {
	var in dto.LoginDTO
	if err := c.ShouldBind(&in); err != nil {
		writeError(c, customErrors.ErrInvalidCredentials)
		return
	}

	pair, err := r.auth.Login(c.Request.Context(), in)
	if err != nil {
		r.log.Info("login rejected", zap.String("username", in.Username))
		writeError(c, err)
		return
	}

	issueTokenCookies(c, r.cfg, pair)
	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// refresh accepts the refresh token via bearer header or cookie and mints
// a new access token only.
func (r *Router) refresh(c *gin.Context) {
	raw := tokenFromRequest(c, jwt.RefreshTokenType)
	if raw == "" {
		writeError(c, customErrors.ErrInvalidToken)
		return
	}

	pair, err := r.auth.Refresh(c.Request.Context(), raw)
	if err != nil {
		writeError(c, err)
		return
	}

	issueTokenCookies(c, r.cfg, pair)
	c.JSON(http.StatusOK, gin.H{
		"access_token": pair.AccessToken,
	})
}

// logout clears both cookies. Requires a valid access token and succeeds
// unconditionally after that check.
func (r *Router) logout(c *gin.Context) {
	clearTokenCookies(c, r.cfg)
	c.JSON(http.StatusOK, gin.H{"detail": "logout successful"})
}
