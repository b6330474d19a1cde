// Package complaint provides the core logic of the complaint backend:
// record creation, read-side normalization, status transitions with their
// audit trail, and the append-only comment log.
package complaint

import (
	"time"

	"github.com/lskolhar/complain-hub/internal/docstore"
	"github.com/lskolhar/complain-hub/internal/models"
)

// EventPublisher receives lifecycle events. Publishing is best-effort; a
// publisher must never block a write path on failure.
type EventPublisher interface {
	Publish(event models.ComplaintEvent)
}

// Service handles the business logic for complaints.
type Service struct {
	Store  docstore.Store
	Events EventPublisher
}

// NewService creates a new complaint service. events may be nil.
func NewService(store docstore.Store, events EventPublisher) *Service {
	return &Service{Store: store, Events: events}
}

func (s *Service) publish(event models.ComplaintEvent) {
	if s.Events == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	s.Events.Publish(event)
}

// stringField returns the value under key when it is a string.
func stringField(doc docstore.Document, key string) (string, bool) {
	v, ok := doc[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// stringOr returns the string under key, or fallback when absent.
func stringOr(doc docstore.Document, key, fallback string) string {
	if str, ok := stringField(doc, key); ok {
		return str
	}
	return fallback
}
