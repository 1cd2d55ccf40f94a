package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"PortfolioAPI/config/environment"
	"PortfolioAPI/models"
	"PortfolioAPI/services"
	"PortfolioAPI/utils"

	"github.com/gin-gonic/gin"
)

// otpValidity is how long a password-reset code stays usable.
const otpValidity = 10 * time.Minute

// AuthController owns registration, login/logout and the password-reset flow.
type AuthController struct {
	Users  services.UserStore
	Images services.ImageStore
	Mail   services.Mailer
	Tokens *services.TokenService
	Config *environment.Config
}

func NewAuthController(users services.UserStore, images services.ImageStore, mail services.Mailer, tokens *services.TokenService, cfg *environment.Config) *AuthController {
	return &AuthController{
		Users:  users,
		Images: images,
		Mail:   mail,
		Tokens: tokens,
		Config: cfg,
	}
}

func (a *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	avatar := models.Image{
		PublicID: "Public_id",
		URL:      "/Profile.png",
	}
	if req.Avatar != "" {
		uploaded, err := a.Images.Upload(c.Request.Context(), req.Avatar, avatarFolder)
		if err != nil {
			c.Error(err)
			return
		}
		avatar = uploaded
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      models.RoleUser,
		Avatar:    avatar,
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		c.Error(err)
		return
	}

	if err := a.Users.CreateUser(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	utils.SendToken(c, a.Tokens, a.Config, user, http.StatusCreated)
}

func (a *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		// same message for unknown email and wrong password
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid email or password")
		return
	}

	utils.SendToken(c, a.Tokens, a.Config, user, http.StatusOK)
}

func (a *AuthController) Logout(c *gin.Context) {
	utils.ClearToken(c, a.Config)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully logged out",
	})
}

// ForgotPassword issues a 6-digit reset code valid for ten minutes. The mail
// goes out first and the code is persisted only once the send succeeded, so a
// failed send never strands a code the user never received.
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "User Not Found")
		return
	}

	otp := 100000 + rand.Intn(900000)
	expiry := time.Now().Add(otpValidity)

	message := fmt.Sprintf("Hello %s,\n\nYour reset password OTP:\n\n%d\n\n"+
		"If you did not make this request, please ignore this email and your password will remain unchanged.\n\n"+
		"Sincerely,\nPORTFOLIO", user.Name, otp)

	if err := a.Mail.Send(user.Email, "PORTFOLIO : Password Reset OTP", message); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to send OTP email")
		return
	}

	if err := a.Users.SetResetOTP(c.Request.Context(), user.ID, otp, expiry); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   fmt.Sprintf("Password reset OTP has been sent to %s", user.Email),
		"emailSend": true,
	})
}

// ResetPassword consumes a reset code: the password update clears the stored
// code, so submitting the same OTP twice fails the second time.
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		NewPassword      string `json:"newPassword" binding:"required,min=8"`
		ConfirmPassword  string `json:"confirmPassword" binding:"required"`
		ResetPasswordOTP int    `json:"resetPasswordOtp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.Users.FindByResetOTP(c.Request.Context(), req.ResetPasswordOTP, time.Now())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid OTP or OTP has been expired")
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
	if err := a.Users.UpdatePassword(c.Request.Context(), user.ID, user.Password); err != nil {
		c.Error(err)
		return
	}

	user.ResetPasswordOTP = nil
	user.ResetPasswordOTPExpiry = nil

	utils.SendToken(c, a.Tokens, a.Config, user, http.StatusOK)
}
