package complaint

import (
	"context"
	"time"

	"github.com/lskolhar/complain-hub/internal/apperr"
	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/models"
)

// AddComment appends a comment to a complaint's comment log. content is
// required; userId and userName fall back to the admin identity. The
// append uses the store's atomic array-append, so concurrent comments are
// never lost and insertion order is preserved.
func (s *Service) AddComment(ctx context.Context, id string, fields map[string]any) error {
	content, _ := stringField(fields, "content")
	if content == "" {
		return apperr.Validation("missing required field: content")
	}

	comment := models.Comment{
		UserID:    stringOr(fields, "userId", config.DefaultActor),
		UserName:  stringOr(fields, "userName", config.DefaultActorName),
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.ArrayAppend(ctx, config.ComplaintsCollection, id, "comments", comment); err != nil {
		return apperr.Storage("error adding comment", err)
	}

	s.publish(models.ComplaintEvent{
		Type:        models.EventCommentAdded,
		ComplaintID: id,
		Actor:       comment.UserID,
	})
	return nil
}
