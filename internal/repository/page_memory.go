package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rfid_tracking/internal/models"
)

type PageMemory struct {
	mu       sync.RWMutex
	sessions map[string]models.PageSession
}

func NewPageMemory() *PageMemory {
	return &PageMemory{sessions: make(map[string]models.PageSession)}
}

// Create stores a new session. Ids are generated by the caller.
func (r *PageMemory) Create(_ context.Context, s models.PageSession) error {
	if s.ID == "" {
		return fmt.Errorf("create page session: empty id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("create page session %q: already exists", s.ID)
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *PageMemory) Get(_ context.Context, id string) (models.PageSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return models.PageSession{}, ErrNotFound
	}
	return s, nil
}

func (r *PageMemory) Update(_ context.Context, id string, fn func(*models.PageSession) bool) (models.PageSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return models.PageSession{}, ErrNotFound
	}
	if fn(&s) {
		r.sessions[id] = s
	}
	return s, nil
}

func (r *PageMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *PageMemory) DeleteIdle(_ context.Context, before time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var evicted []string
	for id, s := range r.sessions {
		if s.TouchedAt.Before(before) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	sort.Strings(evicted)
	return evicted, nil
}

func (r *PageMemory) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
