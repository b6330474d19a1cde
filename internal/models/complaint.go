package models

import "time"

// Complaint is the fully-populated view served by the read path. Stored
// documents are schemaless, so the repository fills every missing field
// with its default before handing the view out. Timestamp-ish fields keep
// whatever representation the store holds.
type Complaint struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	StudentID       string `json:"studentId"`
	StudentName     string `json:"studentName"`
	Department      string `json:"department"`
	AssignedTo      string `json:"assignedTo"`
	RejectionReason string `json:"rejectionReason"`
	ImageURL        string `json:"imageUrl"`
	CreatedAt       any    `json:"createdAt"`
	UpdatedAt       any    `json:"updatedAt"`
	ResolvedAt      any    `json:"resolvedAt"`
	Comments        []any  `json:"comments"`
	Updates         []any  `json:"updates"`
}

// Comment is one entry of a complaint's append-only comment log.
type Comment struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateEntry is one entry of a complaint's append-only audit trail.
// Exactly one entry is written per status transition.
type UpdateEntry struct {
	By          string    `json:"by"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}
