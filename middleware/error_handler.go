package middleware

import (
	"errors"
	"net/http"

	"PortfolioAPI/services"
	"PortfolioAPI/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorHandlerMiddleware normalizes every error reported via c.Error into the
// single {success:false, message} response shape.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		switch {
		case errors.As(err, &customErr):
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)

		case mongo.IsDuplicateKeyError(err):
			// email is the only unique key on the users collection
			utils.ErrorResponse(c, http.StatusBadRequest, "Duplicate Key email")

		case errors.Is(err, services.ErrTokenExpired):
			utils.ErrorResponse(c, http.StatusBadRequest, "JWT is Expired")

		case errors.Is(err, services.ErrTokenInvalid):
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid JWT")

		case errors.Is(err, primitive.ErrInvalidHex):
			utils.ErrorResponse(c, http.StatusBadRequest, "Resource not found. Invalid id")

		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
