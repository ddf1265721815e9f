package repository

import (
	"context"
	"sync"
	"time"

	"emi-calculator/domain"
)

type memorySession struct {
	inputs    domain.LoanInputs
	expiresAt time.Time
}

// SessionRepositoryMemory is an in-memory implementation of SessionRepository.
type SessionRepositoryMemory struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	data      map[string]memorySession
	lastSweep time.Time
}

// NewSessionRepositoryMemory creates a store whose sessions expire ttl after
// their last save. A zero ttl keeps sessions until deleted.
func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	return &SessionRepositoryMemory{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]memorySession),
	}
}

func (r *SessionRepositoryMemory) Save(_ context.Context, id string, inputs domain.LoanInputs) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	s := memorySession{inputs: inputs}
	if r.ttl > 0 {
		s.expiresAt = now.Add(r.ttl)
	}
	r.data[id] = s
	return nil
}

// sweep drops expired sessions, at most once per ttl. Callers hold r.mu.
func (r *SessionRepositoryMemory) sweep(now time.Time) {
	if r.ttl <= 0 || now.Sub(r.lastSweep) < r.ttl {
		return
	}
	r.lastSweep = now
	for id, s := range r.data {
		if now.After(s.expiresAt) {
			delete(r.data, id)
		}
	}
}

func (r *SessionRepositoryMemory) Get(_ context.Context, id string) (domain.LoanInputs, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.data[id]
	if !ok {
		return domain.LoanInputs{}, ErrSessionNotFound
	}
	if !s.expiresAt.IsZero() && r.now().After(s.expiresAt) {
		delete(r.data, id)
		return domain.LoanInputs{}, ErrSessionNotFound
	}
	return s.inputs, nil
}

func (r *SessionRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.data, id)
	return nil
}

// Len reports how many sessions are held. Expired sessions count until the
// next sweep or read removes them.
func (r *SessionRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
