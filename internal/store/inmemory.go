package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryStore keeps reservations in a map. Used for tests and local
// development without a database.
type InMemoryStore struct {
	mu           sync.RWMutex
	reservations map[int64]Reservation
	nextID       int64
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		reservations: make(map[int64]Reservation),
		nextID:       1,
	}
}

// Insert assigns the next id and stores the record.
func (s *InMemoryStore) Insert(ctx context.Context, r Reservation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.reservations[r.ID] = r
	return r.ID, nil
}

// FindByID returns the record or ErrNotFound.
func (s *InMemoryStore) FindByID(ctx context.Context, id int64) (*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

// FindByPhone returns all records under the phone number, ordered by id.
func (s *InMemoryStore) FindByPhone(ctx context.Context, phone string) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Reservation
	for _, r := range s.reservations {
		if r.Phone == phone {
			out = append(out, r)
		}
	}
	sortByID(out)
	return out, nil
}

// DeleteByID removes the record, reporting whether it existed.
func (s *InMemoryStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return false, nil
	}
	delete(s.reservations, id)
	return true, nil
}

// DeleteByPhone removes all records under the phone number.
func (s *InMemoryStore) DeleteByPhone(ctx context.Context, phone string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for id, r := range s.reservations {
		if r.Phone == phone {
			delete(s.reservations, id)
			deleted++
		}
	}
	return deleted, nil
}

// ListAll returns every record ordered by id.
func (s *InMemoryStore) ListAll(ctx context.Context) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, r)
	}
	sortByID(out)
	return out, nil
}

// ListOrders returns delivery orders only.
func (s *InMemoryStore) ListOrders(ctx context.Context) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Reservation
	for _, r := range s.reservations {
		if r.IsOrder() {
			out = append(out, r)
		}
	}
	sortByID(out)
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryStore) Close() {}

func sortByID(rs []Reservation) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
}
