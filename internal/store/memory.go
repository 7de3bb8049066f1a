package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used in tests and when no Redis URL is
// configured. Writes are serialized by a mutex, matching the serialization
// requirement placed on the remote store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Read(_ context.Context, path string) ([]byte, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[path], nil
}

func (s *MemoryStore) Write(_ context.Context, path string, v any) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = data
	return nil
}

func (s *MemoryStore) Update(_ context.Context, path string, fields map[string]any) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := map[string]any{}
	if existing := s.data[path]; len(existing) > 0 {
		_ = json.Unmarshal(existing, &merged)
	}
	for k, v := range fields {
		merged[k] = v
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	s.data[path] = data
	return nil
}

func (s *MemoryStore) Push(ctx context.Context, path string, v any) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	key := uuid.NewString()
	if err := s.Write(ctx, path+"/"+key, v); err != nil {
		return "", err
	}
	return key, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// Len reports the number of stored documents. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
