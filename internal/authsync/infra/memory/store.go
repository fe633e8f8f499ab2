package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orbit-suite/orbit/internal/authsync/domain"
)

// store is a volatile in-process session store: a restart loses all sessions
// and forces re-authentication. A single mutex keeps operations on the same
// key linearizable, so a delete landing after a put removes that put's record.
type store struct {
	mu      sync.RWMutex
	records map[domain.SessionKey]domain.SessionRecord
}

func NewSessionStore() domain.SessionStore {
	return &store{
		records: make(map[domain.SessionKey]domain.SessionRecord),
	}
}

func (s *store) Put(_ context.Context, record domain.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.Key] = cloneRecord(record)
	return nil
}

func (s *store) Get(_ context.Context, key domain.SessionKey) (domain.SessionRecord, error) {
	s.mu.RLock()
	record, ok := s.records[key]
	s.mu.RUnlock()

	if !ok {
		return domain.SessionRecord{}, domain.ErrSessionNotFound
	}

	if record.IsExpired(time.Now()) {
		s.mu.Lock()
		// Revalidate under the write lock: the record could have been
		// re-issued concurrently.
		if current, stillThere := s.records[key]; stillThere && current.IsExpired(time.Now()) {
			delete(s.records, key)
		}
		s.mu.Unlock()
		return domain.SessionRecord{}, domain.ErrSessionNotFound
	}

	return cloneRecord(record), nil
}

func (s *store) Delete(_ context.Context, key domain.SessionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

func (s *store) DeleteByUser(_ context.Context, userID uuid.UUID) ([]domain.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var deleted []domain.SessionRecord
	for key, record := range s.records {
		if record.UserID != userID {
			continue
		}

		delete(s.records, key)
		if !record.IsExpired(now) {
			deleted = append(deleted, cloneRecord(record))
		}
	}

	return deleted, nil
}

func (s *store) AppendOrigin(_ context.Context, userID uuid.UUID, origin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, record := range s.records {
		if record.UserID != userID {
			continue
		}

		if record.RegisterOrigin(origin) {
			s.records[key] = record
		}
	}

	return nil
}

func (s *store) DeleteExpired(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, record := range s.records {
		if record.IsExpired(now) {
			delete(s.records, key)
		}
	}

	return nil
}

func cloneRecord(record domain.SessionRecord) domain.SessionRecord {
	if len(record.KnownOrigins) > 0 {
		origins := make([]string, len(record.KnownOrigins))
		copy(origins, record.KnownOrigins)
		record.KnownOrigins = origins
	}
	return record
}
