package store

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"

	"naturalize/pkg/platform/sentinel"
)

type memoryRecord struct {
	formID string
	fields map[string]string
}

// InMemoryStore keeps records in process memory. Used by tests and single-node
// development.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*memoryRecord
	order   []string
	newID   func() string
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[string]*memoryRecord),
		newID:   func() string { return uuid.NewString() },
	}
}

func (s *InMemoryStore) ReadField(_ context.Context, recordID, fieldID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[recordID]
	if !ok {
		return "", false, nil
	}
	v, ok := rec.fields[fieldID]
	return v, ok, nil
}

func (s *InMemoryStore) ReadFields(_ context.Context, recordID string, fieldIDs []string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(fieldIDs))
	rec, ok := s.records[recordID]
	if !ok {
		return out, nil
	}
	for _, f := range fieldIDs {
		if v, ok := rec.fields[f]; ok {
			out[f] = v
		}
	}
	return out, nil
}

func (s *InMemoryStore) WriteField(_ context.Context, recordID, fieldID, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[recordID]
	if !ok {
		return fmt.Errorf("record %s: %w", recordID, sentinel.ErrNotFound)
	}
	rec.fields[fieldID] = value
	return nil
}

func (s *InMemoryStore) FindRecordsByField(_ context.Context, formID, fieldID, value string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for _, id := range s.order {
		rec := s.records[id]
		if rec.formID != formID {
			continue
		}
		if v, ok := rec.fields[fieldID]; ok && v == value {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *InMemoryStore) CreateRecord(_ context.Context, formID string, fields map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	copied := make(map[string]string, len(fields))
	maps.Copy(copied, fields)
	s.records[id] = &memoryRecord{formID: formID, fields: copied}
	s.order = append(s.order, id)
	return id, nil
}

func (s *InMemoryStore) Exists(_ context.Context, recordID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[recordID]
	return ok, nil
}
