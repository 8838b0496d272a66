package handlers

import (
	"net/http"

	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for registration, login and the
// passcode flows
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account and emails a verification passcode
// @Summary Register a new account
// @Description Create an inactive account and email a 6-digit verification code. The account activates once the code is verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body service.RegisterRequest true "Registration data"
// @Success 201 {object} APIResponse{data=service.UserResponse} "Account created, verification code sent"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 409 {object} APIResponse "Username or email already taken"
// @Failure 502 {object} APIResponse "Account created but verification email failed"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		// The account may exist even when delivery failed; report both.
		if apperrors.IsDelivery(err) {
			c.JSON(http.StatusBadGateway, APIResponse{
				Message: "account created but verification email could not be sent",
				Status:  "error",
				Data:    user,
			})
			return
		}
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "account created, verification code sent", user)
}

// Login authenticates an account and returns an access token
// @Summary Log in
// @Description Authenticate with username and password. Only active (verified) accounts can log in.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} APIResponse{data=service.LoginResponse} "Logged in"
// @Failure 401 {object} APIResponse "Invalid credentials"
// @Failure 403 {object} APIResponse "Account not activated"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "logged in", resp)
}

// VerifyOTP verifies a passcode for registration or password reset
// @Summary Verify a passcode
// @Description Verify the emailed 6-digit code. An inactive account is activated; an active account is authorized to reset its password.
// @Tags auth
// @Accept json
// @Produce json
// @Param verification body service.VerifyOTPRequest true "Email and code"
// @Success 200 {object} APIResponse{data=service.VerifyOTPResponse} "Code verified"
// @Failure 400 {object} APIResponse "Code expired or incorrect"
// @Failure 404 {object} APIResponse "Account or passcode not found"
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req service.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.authService.VerifyOTP(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "code verified", resp)
}

// RequestPasswordReset emails a password-reset passcode
// @Summary Request a password reset
// @Description Email a 6-digit reset code to an active account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.PasswordResetRequest true "Account email"
// @Success 200 {object} APIResponse "Reset code sent"
// @Failure 403 {object} APIResponse "Account not activated"
// @Failure 404 {object} APIResponse "Account not found"
// @Failure 502 {object} APIResponse "Reset email failed"
// @Router /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req service.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.RequestPasswordReset(&req); err != nil {
		if apperrors.IsDelivery(err) {
			respondError(c, http.StatusBadGateway, "reset code could not be sent")
			return
		}
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "reset code sent", nil)
}

// ResetPassword completes a password reset after passcode verification
// @Summary Reset password
// @Description Set a new password. Requires a verified, unexpired passcode, which is consumed by this call.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} APIResponse "Password updated"
// @Failure 400 {object} APIResponse "No verified passcode"
// @Failure 404 {object} APIResponse "Account not found"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "password updated", nil)
}
