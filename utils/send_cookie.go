package utils

import (
	"net/http"

	"PortfolioAPI/config/environment"
	"PortfolioAPI/models"
	"PortfolioAPI/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "userToken"

// SendToken is the canonical session response: a freshly issued token in an
// HTTP-only cookie plus the {success, user, token} body. Every handler that
// creates or mutates session-bearing state responds through it.
func SendToken(c *gin.Context, tokens *services.TokenService, cfg *environment.Config, user *models.User, statusCode int) {
	token, err := tokens.Issue(user.ID.Hex())
	if err != nil {
		c.Error(err)
		return
	}

	setSessionCookie(c, cfg, token, int(tokens.TTL().Seconds()))

	c.JSON(statusCode, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

// ClearToken expires the session cookie immediately.
func ClearToken(c *gin.Context, cfg *environment.Config) {
	setSessionCookie(c, cfg, "", -1)
}

// setSessionCookie is the single cookie policy: HTTP-only always, and
// SameSite=None with Secure in production, SameSite=Lax without Secure
// everywhere else.
func setSessionCookie(c *gin.Context, cfg *environment.Config, token string, maxAge int) {
	if cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", cfg.IsProduction(), true)
}
