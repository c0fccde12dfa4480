package delivery

import (
	"net/http"

	authdto "notevault-backend/internal/auth/dto"
	"notevault-backend/internal/auth/usecase"
	"notevault-backend/pkg/config"
	"notevault-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account and session HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("All fields are required."))
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, "New user is created.", user)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Please provide username or email along with password."))
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookie(c, "accessToken", tokens.AccessToken, int(h.config.AccessTokenExpiry.Seconds()))
	h.setAuthCookie(c, "refreshToken", tokens.RefreshToken, int(h.config.RefreshTokenExpiry.Seconds()))

	response.JSON(c, http.StatusOK, "User logged in successfully.", tokens)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.GetString("userID")); err != nil {
		response.Error(c, err)
		return
	}

	h.clearAuthCookies(c)
	response.JSON(c, http.StatusOK, "User logged out successfully.", nil)
}

// GetUser handles GET /getUserDetails
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.GetString("userID"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Fetched user details successfully.", user)
}

// UpdateFullName handles POST /updateFullName
func (h *AuthHandler) UpdateFullName(c *gin.Context) {
	var req authdto.UpdateFullNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Full name is required."))
		return
	}

	user, err := h.authUsecase.UpdateFullName(c.GetString("userID"), req.FullName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Full name is updated.", user)
}

// UpdatePassword handles POST /updatePassword
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req authdto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Old password and new password are required."))
		return
	}

	if err := h.authUsecase.UpdatePassword(c.GetString("userID"), req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Password is updated.", nil)
}

// DeleteAccount handles POST /deleteUserAccount
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req authdto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Password is required to delete account."))
		return
	}

	if err := h.authUsecase.DeleteAccount(c.GetString("userID"), req.Password); err != nil {
		response.Error(c, err)
		return
	}

	h.clearAuthCookies(c)
	response.JSON(c, http.StatusOK, "User account is deleted.", nil)
}

// RefreshAccessToken handles GET /getNewAccessToken. The refresh token is
// accepted from the refreshToken cookie or a bearer header.
func (h *AuthHandler) RefreshAccessToken(c *gin.Context) {
	refreshToken := tokenFromRequest(c, "refreshToken")
	if refreshToken == "" {
		response.Error(c, response.NewUnauthorized("Refresh token is required."))
		return
	}

	accessToken, err := h.authUsecase.RefreshAccessToken(refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookie(c, "accessToken", accessToken, int(h.config.AccessTokenExpiry.Seconds()))

	response.JSON(c, http.StatusOK, "New access token is issued.", gin.H{"accessToken": accessToken})
}

// ForgotPassword handles POST /forgotPassword
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Email is required."))
		return
	}

	if err := h.authUsecase.ForgotPassword(req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Reset password link is sent to the registered email.", nil)
}

// ResetPassword handles POST /resetPassword/:resetPasswordToken
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("New password is required."))
		return
	}

	if err := h.authUsecase.ResetPassword(c.Param("resetPasswordToken"), req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Password is reset successfully.", nil)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, maxAge, "/", h.config.CookieDomain, h.config.CookieSecure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	h.setAuthCookie(c, "accessToken", "", -1)
	h.setAuthCookie(c, "refreshToken", "", -1)
}
