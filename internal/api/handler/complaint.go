package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lskolhar/complain-hub/internal/docstore"
)

// CreateComplaint handles POST /api/complaint/create.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var payload docstore.Document
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.Complaints.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "Complaint created successfully",
	})
}

// GetAllComplaints handles GET /api/complaint/all.
func (h *Handler) GetAllComplaints(c *gin.Context) {
	complaints, err := h.Complaints.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaintsByUser handles GET /api/complaint/user/:uid.
func (h *Handler) GetComplaintsByUser(c *gin.Context) {
	complaints, err := h.Complaints.ListByOwner(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// UpdateComplaintStatus handles PUT /api/complaint/:id/status.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Complaints.Transition(c.Request.Context(), c.Param("id"), payload); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint status updated successfully"})
}

// AddAdminComment handles POST /api/complaint/:id/comment.
func (h *Handler) AddAdminComment(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Complaints.AddComment(c.Request.Context(), c.Param("id"), payload); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully"})
}

// ClassifyPriority handles POST /api/complaint/admin/classify-priority.
// The classifier's JSON is passed through verbatim and nothing is written
// to the complaint record.
func (h *Handler) ClassifyPriority(c *gin.Context) {
	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Classifier.Classify(c.Request.Context(), payload["complaint"])
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
