package controllers

import (
	"net/http"

	"PortfolioAPI/config/environment"
	"PortfolioAPI/middleware"
	"PortfolioAPI/models"
	"PortfolioAPI/services"
	"PortfolioAPI/utils"

	"github.com/gin-gonic/gin"
)

// StackController manages the tech-stack image list.
type StackController struct {
	Users  services.UserStore
	Images services.ImageStore
	Tokens *services.TokenService
	Config *environment.Config
}

func NewStackController(users services.UserStore, images services.ImageStore, tokens *services.TokenService, cfg *environment.Config) *StackController {
	return &StackController{
		Users:  users,
		Images: images,
		Tokens: tokens,
		Config: cfg,
	}
}

func (s *StackController) CreateStack(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	var req struct {
		Stack stringList `json:"stack" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stack, err := s.uploadAll(c, req.Stack)
	if err != nil {
		c.Error(err)
		return
	}

	user.TechStack = stack
	if err := s.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, s.Tokens, s.Config, user, http.StatusOK)
}

// UpdateStack replaces the whole list: every old blob is destroyed in
// collection order before the replacements are uploaded in submitted order.
func (s *StackController) UpdateStack(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	var req struct {
		Stack stringList `json:"stack" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	for _, image := range user.TechStack {
		if err := s.Images.Destroy(c.Request.Context(), image.PublicID); err != nil {
			c.Error(err)
			return
		}
	}

	stack, err := s.uploadAll(c, req.Stack)
	if err != nil {
		c.Error(err)
		return
	}

	user.TechStack = stack
	if err := s.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, s.Tokens, s.Config, user, http.StatusOK)
}

func (s *StackController) DeleteStack(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	for _, image := range user.TechStack {
		if err := s.Images.Destroy(c.Request.Context(), image.PublicID); err != nil {
			c.Error(err)
			return
		}
	}

	user.TechStack = []models.Image{}
	if err := s.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, s.Tokens, s.Config, user, http.StatusOK)
}

func (s *StackController) uploadAll(c *gin.Context, files []string) ([]models.Image, error) {
	stack := make([]models.Image, 0, len(files))
	for _, file := range files {
		image, err := s.Images.Upload(c.Request.Context(), file, stackFolder)
		if err != nil {
			return nil, err
		}
		stack = append(stack, image)
	}
	return stack, nil
}
