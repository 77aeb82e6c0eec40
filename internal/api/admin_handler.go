package api

import (
	"errors"
	"net/http"

	"webfitpro/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves /manageUsers and /pendingUsers. These endpoints take
// the target account from the "username" query parameter, unlike the
// self-service routes which use a "userName" body field.
type AdminHandler struct {
	accounts service.AccountService
	logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(accounts service.AccountService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{accounts: accounts, logger: logger}
}

type adminUpdateRequest struct {
	Age    *int `json:"age"`
	Height *int `json:"height"`
	Weight *int `json:"weight"`
}

type approveRequest struct {
	UserName string `json:"username"`
}

// ListUsers serves GET /manageUsers.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.accounts.AllUsers(c.Request.Context())
	if err != nil {
		h.internalError(c, "list users failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUser serves PATCH /manageUsers: admin edit of a user's details.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		respondMessage(c, http.StatusBadRequest, "Username is required")
		return
	}

	var req adminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Age == nil || req.Height == nil || req.Weight == nil {
		respondMessage(c, http.StatusBadRequest, "Age, height, and weight are required")
		return
	}

	err := h.accounts.UpdateDetails(c.Request.Context(), username, *req.Age, *req.Height, *req.Weight)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, "admin update failed", err)
		return
	}

	respondMessage(c, http.StatusOK, "Changed User Details Successfully")
}

// DeleteUser serves DELETE /manageUsers: cascade removal of a user and their
// session, likes and like counts.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		respondMessage(c, http.StatusBadRequest, "Username is required")
		return
	}

	err := h.accounts.DeleteAccount(c.Request.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			respondMessage(c, http.StatusNotFound, "Delete User session failed")
		case errors.Is(err, service.ErrLikeListNotFound):
			respondMessage(c, http.StatusNotFound, "Delete User like failed")
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, "Delete User failed")
		default:
			h.internalError(c, "cascade delete failed", err)
		}
		return
	}

	respondMessage(c, http.StatusOK, "Delete user completely successful")
}

// ListPending serves GET /pendingUsers.
func (h *AdminHandler) ListPending(c *gin.Context) {
	users, err := h.accounts.PendingUsers(c.Request.Context())
	if err != nil {
		h.internalError(c, "list pending users failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ApproveUser serves PATCH /pendingUsers: flips isRegistered to "Y".
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserName == "" {
		respondMessage(c, http.StatusBadRequest, "Username is required")
		return
	}

	err := h.accounts.Approve(c.Request.Context(), req.UserName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, "approve failed", err)
		return
	}

	respondMessage(c, http.StatusOK, "Changed Status isRegistered Successfully")
}

func (h *AdminHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err), zap.String("request_id", c.GetString(RequestIDHeader)))
	respondMessage(c, http.StatusInternalServerError, "Internal server error")
}
