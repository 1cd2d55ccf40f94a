package routes

import (
	"PortfolioAPI/config/environment"
	"PortfolioAPI/controllers"
	"PortfolioAPI/handlers"
	"PortfolioAPI/middleware"
	"PortfolioAPI/models"
	"PortfolioAPI/services"

	"github.com/gin-gonic/gin"
)

// Deps bundles the collaborators the controllers are built from. Everything
// is constructed once in main and injected here.
type Deps struct {
	Config *environment.Config
	Users  services.UserStore
	Images services.ImageStore
	Mail   services.Mailer
	Tokens *services.TokenService
}

// RegisterRoutes wires every route with its middleware chain.
func RegisterRoutes(router *gin.Engine, deps Deps) {
	authController := controllers.NewAuthController(deps.Users, deps.Images, deps.Mail, deps.Tokens, deps.Config)
	userController := controllers.NewUserController(deps.Users, deps.Images, deps.Tokens, deps.Config)
	stackController := controllers.NewStackController(deps.Users, deps.Images, deps.Tokens, deps.Config)
	projectController := controllers.NewProjectController(deps.Users, deps.Images, deps.Tokens, deps.Config)

	authenticated := middleware.IsAuthenticated(deps.Tokens, deps.Users)
	adminOnly := middleware.AuthorizedRole(models.RoleAdmin)

	root := router.Group("")
	{
		handlers.RegisterAuthRoutes(root, authController)
		handlers.RegisterUserRoutes(root, userController, authenticated, adminOnly)
		handlers.RegisterStackRoutes(root, stackController, authenticated, adminOnly)
		handlers.RegisterProjectRoutes(root, projectController, authenticated, adminOnly)
	}
}
