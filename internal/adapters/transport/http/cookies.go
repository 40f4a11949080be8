package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/jwt"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/infra/config"
)

func sameSiteMode(cfg *config.Config) http.SameSite {
	switch cfg.CookieSameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// issueTokenCookies attaches the pair as http-only cookies named after the
// token-type discriminators. The refresh cookie is only touched when a
// refresh token was minted.
func issueTokenCookies(c *gin.Context, cfg *config.Config, pair model.TokenPair) {
	c.SetSameSite(sameSiteMode(cfg))
	c.SetCookie(
		jwt.AccessTokenType,
		pair.AccessToken,
		int(pair.AccessTTL.Seconds()),
		cfg.CookiePath,
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // httpOnly
	)
	if pair.RefreshToken != "" {
		c.SetCookie(
			jwt.RefreshTokenType,
			pair.RefreshToken,
			int(pair.RefreshTTL.Seconds()),
			cfg.CookiePath,
			cfg.CookieDomain,
			cfg.CookieSecure,
			true,
		)
	}
}

// clearTokenCookies deletes both cookies with exactly the attributes they
// were set with; mismatched attributes silently fail to clear in browsers.
func clearTokenCookies(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(sameSiteMode(cfg))
	for _, name := range []string{jwt.AccessTokenType, jwt.RefreshTokenType} {
		c.SetCookie(name, "", -1, cfg.CookiePath, cfg.CookieDomain, cfg.CookieSecure, true)
	}
}

// tokenFromRequest prefers an explicit bearer header and falls back to the
// cookie named after the token type. Empty string means "no token" —
// callers decide whether that is fatal.
func tokenFromRequest(c *gin.Context, tokenType string) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if v, err := c.Cookie(tokenType); err == nil {
		return v
	}
	return ""
}
