// Package handler wires the complaint backend to its HTTP surface.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lskolhar/complain-hub/internal/apperr"
	"github.com/lskolhar/complain-hub/internal/classifier"
	"github.com/lskolhar/complain-hub/internal/complaint"
	"github.com/lskolhar/complain-hub/internal/feed"
	"github.com/lskolhar/complain-hub/internal/identity"
)

// Handler holds the services each route dispatches to.
type Handler struct {
	Complaints *complaint.Service
	Classifier *classifier.Client
	Users      *identity.Users
	Verifier   *identity.Verifier
	Hub        *feed.ManagerService
}

func NewHandler(
	complaints *complaint.Service,
	cls *classifier.Client,
	users *identity.Users,
	verifier *identity.Verifier,
	hub *feed.ManagerService,
) *Handler {
	return &Handler{
		Complaints: complaints,
		Classifier: cls,
		Users:      users,
		Verifier:   verifier,
		Hub:        hub,
	}
}

// respondError maps the error kinds onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var validation *apperr.ValidationError
	var auth *apperr.AuthenticationError
	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &auth):
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
