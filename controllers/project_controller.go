package controllers

import (
	"net/http"

	"PortfolioAPI/config/environment"
	"PortfolioAPI/middleware"
	"PortfolioAPI/models"
	"PortfolioAPI/services"
	"PortfolioAPI/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectController manages the projects embedded in the user document.
type ProjectController struct {
	Users  services.UserStore
	Images services.ImageStore
	Tokens *services.TokenService
	Config *environment.Config
}

func NewProjectController(users services.UserStore, images services.ImageStore, tokens *services.TokenService, cfg *environment.Config) *ProjectController {
	return &ProjectController{
		Users:  users,
		Images: images,
		Tokens: tokens,
		Config: cfg,
	}
}

type projectRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Github      string     `json:"github" binding:"required"`
	ProjectLink string     `json:"projectLink" binding:"required"`
	Stack       stringList `json:"stack"`
	Image       string     `json:"image"`
}

func (p *ProjectController) CreateProject(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	project := models.Project{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Github:      req.Github,
		ProjectLink: req.ProjectLink,
		Stack:       []string(req.Stack),
	}

	if req.Image != "" {
		uploaded, err := p.Images.Upload(c.Request.Context(), req.Image, projectFolder)
		if err != nil {
			c.Error(err)
			return
		}
		project.Image = &uploaded
	}

	user.Projects = append(user.Projects, project)
	if err := p.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, p.Tokens, p.Config, user, http.StatusOK)
}

func (p *ProjectController) UpdateProject(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	projectID, err := primitive.ObjectIDFromHex(c.Param("projectId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Resource not found. Invalid projectId")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	project := findProject(user, projectID)
	if project == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Resource not found. Invalid projectId")
		return
	}

	if req.Image != "" {
		if project.Image != nil {
			if err := p.Images.Destroy(c.Request.Context(), project.Image.PublicID); err != nil {
				c.Error(err)
				return
			}
		}
		uploaded, err := p.Images.Upload(c.Request.Context(), req.Image, projectFolder)
		if err != nil {
			c.Error(err)
			return
		}
		project.Image = &uploaded
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Github = req.Github
	project.ProjectLink = req.ProjectLink
	project.Stack = []string(req.Stack)

	if err := p.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, p.Tokens, p.Config, user, http.StatusOK)
}

// DeleteProject removes exactly the addressed project, destroying its image
// first so the blob is not orphaned. Sibling projects are untouched.
func (p *ProjectController) DeleteProject(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Login to access this resource")
		return
	}

	projectID, err := primitive.ObjectIDFromHex(c.Param("projectId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Resource not found. Invalid projectId")
		return
	}

	project := findProject(user, projectID)
	if project == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Resource not found. Invalid projectId")
		return
	}

	if project.Image != nil {
		if err := p.Images.Destroy(c.Request.Context(), project.Image.PublicID); err != nil {
			c.Error(err)
			return
		}
	}

	remaining := make([]models.Project, 0, len(user.Projects)-1)
	for _, pj := range user.Projects {
		if pj.ID != projectID {
			remaining = append(remaining, pj)
		}
	}
	user.Projects = remaining

	if err := p.Users.UpdateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, p.Tokens, p.Config, user, http.StatusOK)
}

func findProject(user *models.User, id primitive.ObjectID) *models.Project {
	for i := range user.Projects {
		if user.Projects[i].ID == id {
			return &user.Projects[i]
		}
	}
	return nil
}
