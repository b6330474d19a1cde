package complaint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lskolhar/complain-hub/internal/apperr"
	"github.com/lskolhar/complain-hub/internal/complaint"
	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/docstore"
)

// TestCreateComplaint_Defaults verifies a minimal payload gets the
// write-time defaults and matching creation timestamps.
func TestCreateComplaint_Defaults(t *testing.T) {
	store := newMemStore()
	svc := complaint.NewService(store, nil)

	id, err := svc.Create(context.Background(), docstore.Document{
		"title":       "Leaky faucet",
		"description": "Room 204",
		"uid":         "u123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	doc, err := store.Get(context.Background(), config.ComplaintsCollection, id)
	assert.NoError(t, err)
	assert.Equal(t, "pending", doc["status"])
	assert.Equal(t, "general", doc["category"])
	assert.Equal(t, "u123", doc["studentId"], "studentId should be derived from uid")
	assert.NotEmpty(t, doc["createdAt"])
	assert.Equal(t, doc["createdAt"], doc["timestamp"], "createdAt and timestamp must be stamped together")
}

// TestCreateComplaint_KeepsExplicitValues verifies defaults never replace
// caller-supplied fields.
func TestCreateComplaint_KeepsExplicitValues(t *testing.T) {
	store := newMemStore()
	svc := complaint.NewService(store, nil)

	id, err := svc.Create(context.Background(), docstore.Document{
		"title":       "Broken projector",
		"description": "Lab 3",
		"status":      "in_progress",
		"category":    "infrastructure",
		"studentId":   "s42",
		"uid":         "ignored-uid",
	})

	assert.NoError(t, err)
	doc, _ := store.Get(context.Background(), config.ComplaintsCollection, id)
	assert.Equal(t, "in_progress", doc["status"])
	assert.Equal(t, "infrastructure", doc["category"])
	assert.Equal(t, "s42", doc["studentId"], "explicit studentId wins over uid")
}

// TestCreateComplaint_MissingRequiredFields verifies validation failures
// reach the caller as ValidationError and cause no store write.
func TestCreateComplaint_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		payload docstore.Document
	}{
		{"missing title", docstore.Document{"description": "Room 204"}},
		{"missing description", docstore.Document{"title": "Leaky faucet"}},
		{"empty title", docstore.Document{"title": "", "description": "Room 204"}},
		{"empty description", docstore.Document{"title": "Leaky faucet", "description": ""}},
		{"empty payload", docstore.Document{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			svc := complaint.NewService(store, nil)

			_, err := svc.Create(context.Background(), tt.payload)

			var validation *apperr.ValidationError
			assert.ErrorAs(t, err, &validation)
			assert.Zero(t, store.count(config.ComplaintsCollection), "no document may be written on validation failure")
		})
	}
}

// TestCreateComplaint_StorageFailure verifies a store error surfaces as
// StorageError.
func TestCreateComplaint_StorageFailure(t *testing.T) {
	store := newMemStore()
	store.failAdd = true
	svc := complaint.NewService(store, nil)

	_, err := svc.Create(context.Background(), docstore.Document{
		"title":       "Leaky faucet",
		"description": "Room 204",
	})

	var storage *apperr.StorageError
	assert.ErrorAs(t, err, &storage)
	assert.False(t, storage.Partial)
}

// TestListAll_NormalizesSparseDocuments verifies every field is defaulted
// when the stored document lacks it, including the read-side category
// default ("others", not the write-side "general").
func TestListAll_NormalizesSparseDocuments(t *testing.T) {
	store := newMemStore()
	svc := complaint.NewService(store, nil)
	assert.NoError(t, store.Set(context.Background(), config.ComplaintsCollection, "sparse-1", docstore.Document{
		"title": "Only a title",
	}))

	complaints, err := svc.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, complaints, 1)
	view := complaints[0]
	assert.Equal(t, "sparse-1", view.ID)
	assert.Equal(t, "Only a title", view.Title)
	assert.Equal(t, "", view.Description)
	assert.Equal(t, "others", view.Category)
	assert.Equal(t, "pending", view.Status)
	assert.Equal(t, "low", view.Priority)
	assert.Equal(t, "", view.StudentID)
	assert.Equal(t, "", view.AssignedTo)
	assert.Nil(t, view.ResolvedAt)
	assert.NotNil(t, view.Comments, "comments must be an empty list, never nil")
	assert.Empty(t, view.Comments)
	assert.NotNil(t, view.Updates)
	assert.Empty(t, view.Updates)
	assert.NotNil(t, view.CreatedAt, "missing createdAt is defaulted, not served as null")
}

// TestListAll_ServesStoredValues verifies populated fields pass through
// unchanged.
func TestListAll_ServesStoredValues(t *testing.T) {
	store := newMemStore()
	svc := complaint.NewService(store, nil)

	id, err := svc.Create(context.Background(), docstore.Document{
		"title":       "Wifi down",
		"description": "Hostel B",
		"category":    "network",
		"priority":    "high",
		"studentName": "Ravi",
	})
	assert.NoError(t, err)

	complaints, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, complaints, 1)
	view := complaints[0]
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "network", view.Category)
	assert.Equal(t, "high", view.Priority)
	assert.Equal(t, "Ravi", view.StudentName)
}

// TestListByOwner verifies only the owner's complaints come back, each
// carrying its document id, with no normalization applied.
func TestListByOwner(t *testing.T) {
	store := newMemStore()
	svc := complaint.NewService(store, nil)

	mine, err := svc.Create(context.Background(), docstore.Document{
		"title": "Mine", "description": "d", "uid": "u123",
	})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), docstore.Document{
		"title": "Not mine", "description": "d", "uid": "u456",
	})
	assert.NoError(t, err)

	complaints, err := svc.ListByOwner(context.Background(), "u123")

	assert.NoError(t, err)
	assert.Len(t, complaints, 1)
	assert.Equal(t, mine, complaints[0]["id"])
	assert.Equal(t, "Mine", complaints[0]["title"])
	// Raw representation: fields the document never had stay absent.
	_, hasPriority := complaints[0]["priority"]
	assert.False(t, hasPriority, "ListByOwner must not fill read defaults")
}

// TestListAll_StorageFailure verifies fetch errors surface as StorageError.
func TestListAll_StorageFailure(t *testing.T) {
	store := newMemStore()
	store.failFetch = true
	svc := complaint.NewService(store, nil)

	_, err := svc.ListAll(context.Background())
	var storage *apperr.StorageError
	assert.ErrorAs(t, err, &storage)

	_, err = svc.ListByOwner(context.Background(), "u123")
	assert.ErrorAs(t, err, &storage)
}
