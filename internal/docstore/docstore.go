// Package docstore provides a document-oriented store keyed by
// collection + document id, backed by a PostgreSQL jsonb table.
// Per-document writes are atomic: every operation is a single SQL
// statement, including the array append.
package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the addressed document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is the schemaless body of a stored document.
type Document = map[string]any

// Stored pairs a document with its store-assigned id.
type Stored struct {
	ID   string
	Data Document
}

// Store is the narrow interface the rest of the backend depends on.
type Store interface {
	// Add persists a new document and returns its generated id.
	Add(ctx context.Context, collection string, data Document) (string, error)
	// Get fetches a single document body.
	Get(ctx context.Context, collection, id string) (Document, error)
	// GetAll fetches every document in a collection, store-defined order.
	GetAll(ctx context.Context, collection string) ([]Stored, error)
	// Query fetches documents whose top-level field equals value.
	Query(ctx context.Context, collection, field, value string) ([]Stored, error)
	// Set writes the full document body, creating it if absent.
	Set(ctx context.Context, collection, id string, data Document) error
	// Update merges the given fields into an existing document.
	Update(ctx context.Context, collection, id string, fields Document) error
	// ArrayAppend appends one element to an array field. The append is a
	// single atomic statement, so concurrent appends never lose elements.
	ArrayAppend(ctx context.Context, collection, id, field string, element any) error
}

// Record is the GORM model backing the store. It exists for migrations;
// all data access goes through raw jsonb statements.
type Record struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:64"`
	Data       []byte `gorm:"type:jsonb;not null"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (Record) TableName() string { return "documents" }

// Service implements Store on top of *gorm.DB.
type Service struct {
	DB *gorm.DB
}

// NewService creates a Postgres-backed document store.
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) Add(ctx context.Context, collection string, data Document) (string, error) {
	id := uuid.New().String()
	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	err = s.DB.WithContext(ctx).Exec(
		`INSERT INTO documents (collection, id, data) VALUES (?, ?, ?::jsonb)`,
		collection, id, string(body),
	).Error
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw []byte
	row := s.DB.WithContext(ctx).Raw(
		`SELECT data FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Row()
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decode(raw)
}

func (s *Service) GetAll(ctx context.Context, collection string) ([]Stored, error) {
	return s.fetch(ctx,
		`SELECT id, data FROM documents WHERE collection = ?`, collection)
}

func (s *Service) Query(ctx context.Context, collection, field, value string) ([]Stored, error) {
	return s.fetch(ctx,
		`SELECT id, data FROM documents WHERE collection = ? AND data->>? = ?`,
		collection, field, value)
}

func (s *Service) fetch(ctx context.Context, query string, args ...any) ([]Stored, error) {
	rows, err := s.DB.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Stored
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		data, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, Stored{ID: id, Data: data})
	}
	return out, rows.Err()
}

func (s *Service) Set(ctx context.Context, collection, id string, data Document) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return s.DB.WithContext(ctx).Exec(
		`INSERT INTO documents (collection, id, data) VALUES (?, ?, ?::jsonb)
		 ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`,
		collection, id, string(body),
	).Error
}

func (s *Service) Update(ctx context.Context, collection, id string, fields Document) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	res := s.DB.WithContext(ctx).Exec(
		`UPDATE documents SET data = data || ?::jsonb WHERE collection = ? AND id = ?`,
		string(body), collection, id,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ArrayAppend(ctx context.Context, collection, id, field string, element any) error {
	// Marshal as a one-element array and concatenate, so the statement
	// stays a single atomic UPDATE.
	body, err := json.Marshal([]any{element})
	if err != nil {
		return fmt.Errorf("encode element: %w", err)
	}
	res := s.DB.WithContext(ctx).Exec(
		`UPDATE documents
		 SET data = jsonb_set(data, ARRAY[?], COALESCE(data->?, '[]'::jsonb) || ?::jsonb)
		 WHERE collection = ? AND id = ?`,
		field, field, string(body), collection, id,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func decode(raw []byte) (Document, error) {
	var data Document
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return data, nil
}
