package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rollcall/internal/apperr"
)

// @Summary Register a new user
// @Description Create an account and issue an access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorEnvelope "Validation error or email already registered"
// @Failure 500 {object} ErrorEnvelope "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.requestLogger(c, "register")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), RegisterRequestToInput(input))
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Success:      true,
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	})
}

// @Summary Log in
// @Description Check credentials and issue a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorEnvelope "Validation error"
// @Failure 401 {object} ErrorEnvelope "Invalid credentials"
// @Failure 500 {object} ErrorEnvelope "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.requestLogger(c, "login")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success:      true,
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	})
}

// @Summary Refresh access token
// @Description Exchange the current refresh token for a new access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body RefreshRequest true "Refresh request"
// @Success 200 {object} map[string]any "accessToken"
// @Failure 400 {object} ErrorEnvelope "Validation error"
// @Failure 401 {object} ErrorEnvelope "Invalid or revoked refresh token"
// @Router /auth/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	var input RefreshRequest
	log := h.requestLogger(c, "refresh")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		respondError(c, log, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"accessToken": accessToken})
}

// @Summary Log out
// @Description Revoke the stored refresh token of the current user.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Logged out"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.requestLogger(c, "logout")

	user, ok := currentUser(c)
	if !ok {
		respondError(c, log, apperr.Unauthorized("Authorization token required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), user.UserID); err != nil {
		respondError(c, log, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any "user"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Failure 404 {object} ErrorEnvelope "User not found"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	log := h.requestLogger(c, "me")

	user, ok := currentUser(c)
	if !ok {
		respondError(c, log, apperr.Unauthorized("Authorization token required"))
		return
	}

	profile, err := h.authService.GetMe(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"user": profile})
}

// @Summary Register device
// @Description Bind the current user to an area and store the device push token.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body RegisterDeviceRequest true "Device registration request"
// @Success 200 {object} map[string]any "user"
// @Failure 400 {object} ErrorEnvelope "Validation error"
// @Failure 401 {object} ErrorEnvelope "Unauthorized"
// @Failure 404 {object} ErrorEnvelope "User not found"
// @Router /users/device [post]
func (h *Handler) registerDevice(c *gin.Context) {
	var input RegisterDeviceRequest
	log := h.requestLogger(c, "registerDevice")

	user, ok := currentUser(c)
	if !ok {
		respondError(c, log, apperr.Unauthorized("Authorization token required"))
		return
	}

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	profile, err := h.userService.RegisterDevice(c.Request.Context(), user.UserID, input.AreaID, input.DeviceToken, input.Name)
	if err != nil {
		respondError(c, log, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"user": profile})
}
