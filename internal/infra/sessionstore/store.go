package sessionstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"table-booking/internal/infra"
	"table-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Store keeps values in memory under random ids. An entry idle for longer than the TTL is
// evicted, and the evict callback runs for it outside the lock.
type Store[T any] struct {
	mu      sync.Mutex
	items   map[uuid.UUID]*entry[T]
	ttl     time.Duration
	clock   clock.Clock
	logger  *slog.Logger
	onEvict func(T)
}

// New builds an empty store. A zero ttl disables expiry; onEvict may be nil.
func New[T any](ttl time.Duration, clk clock.Clock, logger *slog.Logger, onEvict func(T)) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	if onEvict == nil {
		onEvict = func(T) {}
	}
	return &Store[T]{
		items:   make(map[uuid.UUID]*entry[T]),
		ttl:     ttl,
		clock:   clk,
		logger:  logger,
		onEvict: onEvict,
	}
}

func (s *Store[T]) Put(value T) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	s.items[id] = &entry[T]{value: value, lastSeen: s.clock.Now()}
	s.mu.Unlock()

	return id
}

// Get returns the value and marks it as used.
func (s *Store[T]) Get(id uuid.UUID) (T, error) {
	var zero T
	now := s.clock.Now()

	s.mu.Lock()
	e, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return zero, infra.NewStoreErr(s.logger, infra.KindNotFound, id, "session not found")
	}
	if s.expired(e, now) {
		delete(s.items, id)
		s.mu.Unlock()
		s.onEvict(e.value)
		return zero, infra.NewStoreErr(s.logger, infra.KindExpired, id, "session idle past its TTL")
	}
	e.lastSeen = now
	s.mu.Unlock()

	return e.value, nil
}

func (s *Store[T]) Delete(id uuid.UUID) (T, error) {
	var zero T

	s.mu.Lock()
	e, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()

	if !ok {
		return zero, infra.NewStoreErr(s.logger, infra.KindNotFound, id, "session not found")
	}
	return e.value, nil
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep evicts every expired entry and reports how many went.
func (s *Store[T]) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	var evicted []T
	for id, e := range s.items {
		if s.expired(e, now) {
			evicted = append(evicted, e.value)
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	for _, v := range evicted {
		s.onEvict(v)
	}
	if len(evicted) > 0 {
		s.logger.Info("expired sessions evicted", "count", len(evicted))
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done.
func (s *Store[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store[T]) expired(e *entry[T], now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
