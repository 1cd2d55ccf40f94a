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

// UserController owns the profile, password, about-me and user-list handlers.
type UserController struct {
	Users  services.UserStore
	Images services.ImageStore
	Tokens *services.TokenService
	Config *environment.Config
}

func NewUserController(users services.UserStore, images services.ImageStore, tokens *services.TokenService, cfg *environment.Config) *UserController {
	return &UserController{
		Users:  users,
		Images: images,
		Tokens: tokens,
		Config: cfg,
	}
}

func (u *UserController) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (u *UserController) GetUsers(c *gin.Context) {
	users, err := u.Users.FindAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// UpdateProfile changes name/email and, when a new avatar is submitted,
// destroys the previous blob before uploading the replacement.
func (u *UserController) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	var req struct {
		Name   string `json:"name"`
		Email  string `json:"email" binding:"omitempty,email"`
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Avatar != "" {
		if err := u.Images.Destroy(c.Request.Context(), user.Avatar.PublicID); err != nil {
			c.Error(err)
			return
		}
		uploaded, err := u.Images.Upload(c.Request.Context(), req.Avatar, avatarFolder)
		if err != nil {
			c.Error(err)
			return
		}
		user.Avatar = uploaded
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := u.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, u.Tokens, u.Config, user, http.StatusOK)
}

func (u *UserController) UpdatePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	var req struct {
		OldPassword     string `json:"oldPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// the session identity is loaded without credentials, fetch them
	withPassword, err := u.Users.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		c.Error(err)
		return
	}

	if !withPassword.CheckPassword(req.OldPassword) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid old password")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.ErrorResponse(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	if err := u.Users.UpdatePassword(c.Request.Context(), user.ID, user.Password); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, u.Tokens, u.Config, user, http.StatusOK)
}

func (u *UserController) CreateOrUpdateAboutMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	var req struct {
		Heading     string `json:"heading" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user.AboutMe = &models.AboutMe{
		Heading:     req.Heading,
		Description: req.Description,
	}

	if err := u.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, u.Tokens, u.Config, user, http.StatusOK)
}
