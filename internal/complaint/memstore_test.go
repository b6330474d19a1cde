package complaint_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/lskolhar/complain-hub/internal/docstore"
	"github.com/lskolhar/complain-hub/internal/models"
)

// memStore is an in-memory docstore.Store for tests. Every write is
// round-tripped through JSON so stored values look exactly like they would
// coming back from the real jsonb column (time.Time becomes a string,
// structs become maps, arrays become []any).
type memStore struct {
	mu   sync.Mutex
	docs map[string]map[string]docstore.Document
	ids  map[string][]string // insertion order per collection

	failAdd    bool
	failUpdate bool
	failAppend bool
	failFetch  bool
}

var errStoreDown = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{
		docs: make(map[string]map[string]docstore.Document),
		ids:  make(map[string][]string),
	}
}

func roundTrip(v any) any {
	raw, _ := json.Marshal(v)
	var out any
	_ = json.Unmarshal(raw, &out)
	return out
}

func roundTripDoc(data docstore.Document) docstore.Document {
	doc, _ := roundTrip(data).(map[string]any)
	return doc
}

func (s *memStore) Add(ctx context.Context, collection string, data docstore.Document) (string, error) {
	if s.failAdd {
		return "", errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.put(collection, id, roundTripDoc(data))
	return id, nil
}

func (s *memStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	if s.failFetch {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return doc, nil
}

func (s *memStore) GetAll(ctx context.Context, collection string) ([]docstore.Stored, error) {
	if s.failFetch {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []docstore.Stored
	for _, id := range s.ids[collection] {
		out = append(out, docstore.Stored{ID: id, Data: s.docs[collection][id]})
	}
	return out, nil
}

func (s *memStore) Query(ctx context.Context, collection, field, value string) ([]docstore.Stored, error) {
	if s.failFetch {
		return nil, errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []docstore.Stored
	for _, id := range s.ids[collection] {
		doc := s.docs[collection][id]
		if v, ok := doc[field].(string); ok && v == value {
			out = append(out, docstore.Stored{ID: id, Data: doc})
		}
	}
	return out, nil
}

func (s *memStore) Set(ctx context.Context, collection, id string, data docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(collection, id, roundTripDoc(data))
	return nil
}

func (s *memStore) Update(ctx context.Context, collection, id string, fields docstore.Document) error {
	if s.failUpdate {
		return errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return docstore.ErrNotFound
	}
	for k, v := range roundTripDoc(fields) {
		doc[k] = v
	}
	return nil
}

func (s *memStore) ArrayAppend(ctx context.Context, collection, id, field string, element any) error {
	if s.failAppend {
		return errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return docstore.ErrNotFound
	}
	arr, _ := doc[field].([]any)
	doc[field] = append(arr, roundTrip(element))
	return nil
}

func (s *memStore) put(collection, id string, data docstore.Document) {
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]docstore.Document)
	}
	if _, exists := s.docs[collection][id]; !exists {
		s.ids[collection] = append(s.ids[collection], id)
	}
	s.docs[collection][id] = data
}

func (s *memStore) count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs[collection])
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.ComplaintEvent
}

func (p *recordingPublisher) Publish(event models.ComplaintEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) all() []models.ComplaintEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.ComplaintEvent(nil), p.events...)
}
