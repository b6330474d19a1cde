package models

import "time"

// Event types published on the complaint feed.
const (
	EventComplaintCreated = "complaint_created"
	EventStatusChanged    = "status_changed"
	EventCommentAdded     = "comment_added"
)

// ComplaintEvent is broadcast to the admin feed whenever a complaint is
// created or mutated. Publishing is best-effort and never fails the write
// that produced the event.
type ComplaintEvent struct {
	Type        string    `json:"type"`
	ComplaintID string    `json:"complaint_id"`
	Title       string    `json:"title,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status,omitempty"`
	Actor       string    `json:"actor,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
