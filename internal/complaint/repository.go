package complaint

import (
	"context"
	"time"

	"github.com/lskolhar/complain-hub/internal/apperr"
	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/docstore"
	"github.com/lskolhar/complain-hub/internal/models"
)

// Create validates and persists a new complaint, returning its id.
// title and description are required; studentId is derived from uid when
// absent; status and category get write-time defaults. createdAt and
// timestamp are stamped to the same instant and never altered afterwards.
func (s *Service) Create(ctx context.Context, payload docstore.Document) (string, error) {
	if title, _ := stringField(payload, "title"); title == "" {
		return "", apperr.Validation("missing required fields: title or description")
	}
	if description, _ := stringField(payload, "description"); description == "" {
		return "", apperr.Validation("missing required fields: title or description")
	}

	doc := docstore.Document{}
	for k, v := range payload {
		doc[k] = v
	}

	if _, ok := doc["studentId"]; !ok {
		if uid, ok := doc["uid"]; ok {
			doc["studentId"] = uid
		}
	}
	if _, ok := doc["status"]; !ok {
		doc["status"] = config.DefaultStatus
	}
	if _, ok := doc["category"]; !ok {
		doc["category"] = config.DefaultCategory
	}

	now := time.Now().UTC()
	doc["createdAt"] = now
	doc["timestamp"] = now

	id, err := s.Store.Add(ctx, config.ComplaintsCollection, doc)
	if err != nil {
		return "", apperr.Storage("error creating complaint", err)
	}

	s.publish(models.ComplaintEvent{
		Type:        models.EventComplaintCreated,
		ComplaintID: id,
		Title:       stringOr(doc, "title", ""),
		Category:    stringOr(doc, "category", config.DefaultCategory),
		Status:      stringOr(doc, "status", config.DefaultStatus),
		Actor:       stringOr(doc, "studentId", ""),
	})
	return id, nil
}

// ListAll returns every complaint as a fully-populated view. Documents may
// predate schema additions, so every field is defaulted when missing.
// Order is store-defined.
func (s *Service) ListAll(ctx context.Context) ([]models.Complaint, error) {
	stored, err := s.Store.GetAll(ctx, config.ComplaintsCollection)
	if err != nil {
		return nil, apperr.Storage("error fetching complaints", err)
	}

	complaints := make([]models.Complaint, 0, len(stored))
	for _, doc := range stored {
		complaints = append(complaints, normalize(doc.ID, doc.Data))
	}
	return complaints, nil
}

// ListByOwner returns the complaints whose uid field matches, as raw stored
// documents with the id added. Unlike ListAll no normalization is applied.
func (s *Service) ListByOwner(ctx context.Context, uid string) ([]docstore.Document, error) {
	stored, err := s.Store.Query(ctx, config.ComplaintsCollection, "uid", uid)
	if err != nil {
		return nil, apperr.Storage("error fetching user's complaints", err)
	}

	complaints := make([]docstore.Document, 0, len(stored))
	for _, doc := range stored {
		data := doc.Data
		if data == nil {
			data = docstore.Document{}
		}
		data["id"] = doc.ID
		complaints = append(complaints, data)
	}
	return complaints, nil
}

// normalize fills the full complaint field set from a raw document.
func normalize(id string, data docstore.Document) models.Complaint {
	now := time.Now().UTC()
	return models.Complaint{
		ID:              id,
		Title:           stringOr(data, "title", ""),
		Description:     stringOr(data, "description", ""),
		Category:        stringOr(data, "category", config.ReadDefaultCategory),
		Status:          stringOr(data, "status", config.DefaultStatus),
		Priority:        stringOr(data, "priority", config.ReadDefaultPriority),
		StudentID:       stringOr(data, "studentId", ""),
		StudentName:     stringOr(data, "studentName", ""),
		Department:      stringOr(data, "department", ""),
		AssignedTo:      stringOr(data, "assignedTo", ""),
		RejectionReason: stringOr(data, "rejectionReason", ""),
		ImageURL:        stringOr(data, "imageUrl", ""),
		CreatedAt:       valueOr(data, "createdAt", now),
		UpdatedAt:       valueOr(data, "updatedAt", now),
		ResolvedAt:      valueOr(data, "resolvedAt", nil),
		Comments:        sliceOr(data, "comments"),
		Updates:         sliceOr(data, "updates"),
	}
}

func valueOr(doc docstore.Document, key string, fallback any) any {
	if v, ok := doc[key]; ok && v != nil {
		return v
	}
	return fallback
}

func sliceOr(doc docstore.Document, key string) []any {
	if v, ok := doc[key].([]any); ok {
		return v
	}
	return []any{}
}
