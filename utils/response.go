package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the canonical failure shape and stops the chain.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
