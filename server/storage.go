package server

import (
	"context"
	"sync"
)

type ScriptStorage interface {
	Save(ctx context.Context, rec ScriptRecord) error
	Get(ctx context.Context, id string) *ScriptRecord
	Delete(ctx context.Context, id string) error
	Len() int
}

// ScriptMemoryStorage keeps at most limit records, dropping the oldest.
type ScriptMemoryStorage struct {
	data  map[string]ScriptRecord
	order []string
	limit int
	mu    sync.RWMutex
}

var _ ScriptStorage = (*ScriptMemoryStorage)(nil)

func NewScriptMemoryStorage(limit int) *ScriptMemoryStorage {
	return &ScriptMemoryStorage{
		data:  make(map[string]ScriptRecord),
		limit: limit,
	}
}

func (s *ScriptMemoryStorage) Save(ctx context.Context, rec ScriptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[rec.ID]; !exists {
		s.order = append(s.order, rec.ID)
	}
	s.data[rec.ID] = rec
	for s.limit > 0 && len(s.order) > s.limit {
		delete(s.data, s.order[0])
		s.order = s.order[1:]
	}
	return nil
}

func (s *ScriptMemoryStorage) Get(ctx context.Context, id string) *ScriptRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, exists := s.data[id]
	if !exists {
		return nil
	}
	return &rec
}

func (s *ScriptMemoryStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[id]; !exists {
		return nil
	}
	delete(s.data, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *ScriptMemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
