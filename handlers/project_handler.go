package handlers

import (
	"PortfolioAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProjectRoutes(router *gin.RouterGroup, projectController *controllers.ProjectController, authenticated, adminOnly gin.HandlerFunc) {
	projectGroup := router.Group("/admin/project", authenticated, adminOnly)
	{
		projectGroup.POST("/create", projectController.CreateProject)
		projectGroup.PUT("/update/:projectId", projectController.UpdateProject)
		projectGroup.DELETE("/delete/:projectId", projectController.DeleteProject)
	}
}
