package handlers

import (
	"PortfolioAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController, authenticated, adminOnly gin.HandlerFunc) {
	router.GET("/users", userController.GetUsers)

	adminGroup := router.Group("/admin", authenticated, adminOnly)
	{
		adminGroup.GET("/profile", userController.GetProfile)
		adminGroup.PUT("/profile/update", userController.UpdateProfile)
		adminGroup.PUT("/profile/password", userController.UpdatePassword)
		adminGroup.PUT("/aboutme", userController.CreateOrUpdateAboutMe)
	}
}
