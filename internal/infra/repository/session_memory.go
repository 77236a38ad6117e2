package repository

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
)

// SessionMemoryRepository mantém as sessões no processo. É o padrão
// quando REDIS_ADDR não está configurado.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*schedule.State
}

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]*schedule.State),
	}
}

func (r *SessionMemoryRepository) Create(ctx context.Context, s *schedule.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *SessionMemoryRepository) Get(ctx context.Context, id string) (*schedule.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, schedule.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (r *SessionMemoryRepository) Update(
	ctx context.Context,
	id string,
	fn func(s *schedule.State) error,
) (*schedule.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.sessions[id]
	if !ok {
		return nil, schedule.ErrSessionNotFound
	}

	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	r.sessions[id] = next
	return next.Clone(), nil
}

func (r *SessionMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *SessionMemoryRepository) Sweep(ctx context.Context, before time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(before) {
			delete(r.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed, nil
}

func (r *SessionMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
