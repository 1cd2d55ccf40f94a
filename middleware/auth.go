package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"PortfolioAPI/models"
	"PortfolioAPI/services"
	"PortfolioAPI/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContextUserKey is where IsAuthenticated stores the loaded identity.
const ContextUserKey = "user"

// IsAuthenticated extracts the session cookie, verifies the token, loads the
// user it asserts and attaches it to the request context. Every failure
// short-circuits the chain: no handler runs behind a bad session. A valid
// token whose user no longer exists is rejected rather than passed through
// as a nil identity.
func IsAuthenticated(tokens *services.TokenService, users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(utils.SessionCookieName)
		if err != nil || tokenString == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			c.Error(services.ErrTokenInvalid)
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), oid)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "User no longer exists")
				return
			}
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AuthorizedRole allows the request through only if the authenticated user's
// role is one of roles. A missing identity is an automatic denial, so the
// gate fails closed even if it is wired without IsAuthenticated in front.
func AuthorizedRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusUnauthorized,
			fmt.Sprintf("%s is not allowed to access this resource", user.Role))
	}
}

// CurrentUser returns the identity attached by IsAuthenticated, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
