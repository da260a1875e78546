package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashton-hoops/Defense/clip"
	"github.com/ashton-hoops/Defense/store"
)

type memoryStore struct {
	options store.Options
	records map[string]clip.Record
	order   []string
	mtx     sync.RWMutex
}

func (s *memoryStore) FetchAll(ctx context.Context) ([]clip.Record, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	// newest first, matching the sql stores
	records := make([]clip.Record, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		records = append(records, s.records[s.order[i]])
	}

	return records, nil
}

func (s *memoryStore) Fetch(ctx context.Context, id string) (*clip.Record, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	rec, exists := s.records[id]
	if !exists {
		return nil, nil
	}

	return &rec, nil
}

func (s *memoryStore) Upsert(ctx context.Context, rec clip.Record) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if rec.Id == "" {
		rec.Id = uuid.New().String()
	}

	now := time.Now().UTC().Format(time.RFC3339)

	prior, exists := s.records[rec.Id]
	if exists {
		if rec.CreatedAt == "" {
			rec.CreatedAt = prior.CreatedAt
		}
	} else {
		s.order = append(s.order, rec.Id)
		if rec.CreatedAt == "" {
			rec.CreatedAt = now
		}
	}
	rec.UpdatedAt = now

	s.records[rec.Id] = rec

	return nil
}

func (s *memoryStore) Remove(ctx context.Context, id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, exists := s.records[id]; !exists {
		return nil
	}

	delete(s.records, id)

	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}

func NewStore(opts ...store.Option) store.Store {
	options := store.NewOptions(opts...)

	return &memoryStore{
		options: options,
		records: map[string]clip.Record{},
		mtx:     sync.RWMutex{},
	}
}
