package handlers

import (
	"PortfolioAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterStackRoutes(router *gin.RouterGroup, stackController *controllers.StackController, authenticated, adminOnly gin.HandlerFunc) {
	stackGroup := router.Group("/admin/stack", authenticated, adminOnly)
	{
		stackGroup.POST("/create", stackController.CreateStack)
		stackGroup.PUT("/update", stackController.UpdateStack)
		stackGroup.DELETE("/delete", stackController.DeleteStack)
	}
}
