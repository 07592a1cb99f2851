// File: /controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/services"
	"socialhub-app/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// SendCode texts a verification code. Repeated requests for the same number
// within the resend interval get 429 with Retry-After.
func (ac *AuthController) SendCode(c *gin.Context) {
	s := middleware.GetSession(c)

	var req models.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	phone, err := ac.auth.SendCode(c.Request.Context(), s, req.PhoneNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, "Verification code sent", gin.H{"phone_number": phone})
}

func (ac *AuthController) VerifyCode(c *gin.Context) {
	s := middleware.GetSession(c)

	var req models.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	customer, err := ac.auth.VerifyCode(c.Request.Context(), s, req.PhoneNumber, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    customer,
		"auth":    s.State().Auth,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	s := middleware.GetSession(c)
	ac.auth.Logout(s)
	utils.SendSuccess(c, "Logged out successfully", nil)
}

func (ac *AuthController) Me(c *gin.Context) {
	s := middleware.GetSession(c)
	c.JSON(http.StatusOK, s.State().Auth)
}
