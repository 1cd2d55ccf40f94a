package handlers

import (
	"PortfolioAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)
	router.POST("/register", authController.Register)
	router.POST("/password/forgot", authController.ForgotPassword)
	router.PUT("/password/reset", authController.ResetPassword)
}
