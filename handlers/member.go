package handlers

import (
	"errors"
	"net/http"

	"atelier/services/member"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemberHandler exposes the members area and its admin management.
type MemberHandler struct {
	Svc member.MemberService
}

// NewMemberHandler creates a MemberHandler.
func NewMemberHandler(svc member.MemberService) *MemberHandler {
	return &MemberHandler{Svc: svc}
}

// RedeemHandler exchanges an email/invite-code pair for a member token.
func (h *MemberHandler) RedeemHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	token, err := h.Svc.Redeem(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid invite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// ResourcesHandler returns member-only portfolio entries.
func (h *MemberHandler) ResourcesHandler(c *gin.Context) {
	logger := getLogger(c)

	memberID := c.GetString("memberID")
	resources, err := h.Svc.Resources(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, member.ErrInvalidInvite) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
			return
		}
		logger.Error("failed to list member resources", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list resources"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "resources": resources})
}

// CreateMemberHandler registers a member and returns the one-time invite code.
func (h *MemberHandler) CreateMemberHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	m, code, err := h.Svc.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		logger.Error("failed to create member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not create member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "member": m, "inviteCode": code})
}

// RevokeMemberHandler deactivates a member.
func (h *MemberHandler) RevokeMemberHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Svc.Revoke(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("failed to revoke member", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListMembersHandler returns all members for the admin dashboard.
func (h *MemberHandler) ListMembersHandler(c *gin.Context) {
	logger := getLogger(c)

	members, err := h.Svc.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "members": members})
}
