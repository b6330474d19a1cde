package complaint

import (
	"context"
	"time"

	"github.com/lskolhar/complain-hub/internal/apperr"
	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/models"
)

// Transition changes a complaint's status and appends the matching audit
// entry. fields may carry status, updatedBy and description; whichever of
// status/updatedBy are present are written, together with a fresh updatedAt.
//
// The field update and the audit append are two separate store operations
// and are not wrapped in a transaction. If the append fails after the
// update succeeded, the status has already changed but no audit entry was
// recorded; the returned StorageError says so and nothing is rolled back.
// The append itself is atomic, so concurrent transitions never lose
// entries, they only interleave.
func (s *Service) Transition(ctx context.Context, id string, fields map[string]any) error {
	now := time.Now().UTC()

	updates := map[string]any{"updatedAt": now}
	if status, ok := fields["status"]; ok {
		updates["status"] = status
	}
	if updatedBy, ok := fields["updatedBy"]; ok {
		updates["updatedBy"] = updatedBy
	}

	if err := s.Store.Update(ctx, config.ComplaintsCollection, id, updates); err != nil {
		return apperr.Storage("error updating complaint status", err)
	}

	entry := models.UpdateEntry{
		By:     stringOr(fields, "updatedBy", config.DefaultActor),
		Date:   now,
		Status: stringOr(fields, "status", ""),
	}
	if description, ok := stringField(fields, "description"); ok {
		entry.Description = description
	}

	if err := s.Store.ArrayAppend(ctx, config.ComplaintsCollection, id, "updates", entry); err != nil {
		return apperr.PartialStorage(
			"complaint status was updated but the audit entry could not be recorded", err)
	}

	s.publish(models.ComplaintEvent{
		Type:        models.EventStatusChanged,
		ComplaintID: id,
		Status:      entry.Status,
		Actor:       entry.By,
	})
	return nil
}
