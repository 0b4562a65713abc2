package store

import (
	"context"
	"sync"

	"naturalize/internal/profile/models"
)

// InMemoryStore keeps profiles in a map. Apply holds the write lock for the
// whole batch, which is its atomicity guarantee.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]map[string]string
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]map[string]string)}
}

func (s *InMemoryStore) Get(_ context.Context, userID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.profiles[userID][key]
	return v, ok, nil
}

func (s *InMemoryStore) Set(ctx context.Context, userID, key, value string) error {
	return s.Apply(ctx, userID, []models.Mutation{models.SetOp(key, value)})
}

func (s *InMemoryStore) Delete(ctx context.Context, userID, key string) error {
	return s.Apply(ctx, userID, []models.Mutation{models.DeleteOp(key)})
}

func (s *InMemoryStore) Apply(_ context.Context, userID string, mutations []models.Mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		profile = make(map[string]string)
		s.profiles[userID] = profile
	}
	for _, m := range mutations {
		if m.Delete {
			delete(profile, m.Key)
			continue
		}
		profile[m.Key] = m.Value
	}
	if len(profile) == 0 {
		delete(s.profiles, userID)
	}
	return nil
}

// Snapshot returns a copy of a user's profile. Test helper.
func (s *InMemoryStore) Snapshot(userID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.profiles[userID]))
	for k, v := range s.profiles[userID] {
		out[k] = v
	}
	return out
}
