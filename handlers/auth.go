package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"atelier/middleware"
	"atelier/services/auth"
	"atelier/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the admin credential gate over HTTP.
type AuthHandler struct {
	Gate *auth.CredentialGate
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(gate *auth.CredentialGate) *AuthHandler {
	return &AuthHandler{Gate: gate}
}

// LoginHandler verifies the admin secret and issues a token. Failures are a
// single generic 401; rate limiting is keyed on the client address.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	clientKey := middleware.ClientIP(c)
	token, err := h.Gate.Authenticate(c.Request.Context(), clientKey, req.Password)
	if err != nil {
		var limited auth.RateLimitedError
		if errors.As(err, &limited) {
			retryAfter := int(limited.RetryAfter.Seconds())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":    false,
				"error":      "Too many attempts",
				"retryAfter": retryAfter,
			})
			return
		}
		logger.Warn("admin login failed", zap.String("ip", clientKey))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// VerifyHandler reports whether a presented token is still a valid admin token.
func (h *AuthHandler) VerifyHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "valid": utils.IsAdminToken(req.Token)})
}

// ChangePasswordHandler rotates the admin secret. Requires an admin token
// and the current secret.
func (h *AuthHandler) ChangePasswordHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	err := h.Gate.ChangeSecret(c.Request.Context(), req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, auth.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
	case errors.Is(err, auth.ErrWeakSecret):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case err != nil:
		logger.Error("password rotation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not change password"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
