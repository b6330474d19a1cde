package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lskolhar/complain-hub/internal/docstore"
)

// Signup handles POST /api/user/signup. It creates the profile document;
// the credential itself is owned by the external identity provider.
func (h *Handler) Signup(c *gin.Context) {
	var payload docstore.Document
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.Users.Signup(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Signin handles POST /api/user/signin. Password verification is not
// supported on the backend; clients authenticate against the identity
// provider and send the resulting token to verifyToken.
func (h *Handler) Signin(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": "Signin with password is not supported on backend. Authenticate with the identity provider and send the token to /api/auth/verifyToken.",
	})
}

// AdminLogin handles POST /api/user/admin/login, same contract as Signin.
func (h *Handler) AdminLogin(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": "Admin login with password is not supported on backend. Authenticate with the identity provider and send the token to /api/auth/verifyToken.",
	})
}

// EditUser handles PUT /api/user/edit/:id.
func (h *Handler) EditUser(c *gin.Context) {
	var payload docstore.Document
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Users.Edit(c.Request.Context(), c.Param("id"), payload); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// GetAllUsers handles GET /api/user/all.
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.Users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// BlockUser handles PATCH/POST /api/user/block/:id.
func (h *Handler) BlockUser(c *gin.Context) {
	var payload struct {
		BlockReason string `json:"blockReason"`
	}
	// A missing body means an empty reason, not an error.
	_ = c.ShouldBindJSON(&payload)

	if err := h.Users.Block(c.Request.Context(), c.Param("id"), payload.BlockReason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User blocked successfully"})
}

// UnblockUser handles PATCH/POST /api/user/unblock/:id.
func (h *Handler) UnblockUser(c *gin.Context) {
	if err := h.Users.Unblock(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User unblocked successfully"})
}
