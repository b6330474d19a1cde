package identity_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lskolhar/complain-hub/internal/docstore"
)

// MockStore is a testify mock of the docstore.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Add(ctx context.Context, collection string, data docstore.Document) (string, error) {
	args := m.Called(collection, data)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	args := m.Called(collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docstore.Document), args.Error(1)
}

func (m *MockStore) GetAll(ctx context.Context, collection string) ([]docstore.Stored, error) {
	args := m.Called(collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docstore.Stored), args.Error(1)
}

func (m *MockStore) Query(ctx context.Context, collection, field, value string) ([]docstore.Stored, error) {
	args := m.Called(collection, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docstore.Stored), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, collection, id string, data docstore.Document) error {
	args := m.Called(collection, id, data)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, collection, id string, fields docstore.Document) error {
	args := m.Called(collection, id, fields)
	return args.Error(0)
}

func (m *MockStore) ArrayAppend(ctx context.Context, collection, id, field string, element any) error {
	args := m.Called(collection, id, field, element)
	return args.Error(0)
}
