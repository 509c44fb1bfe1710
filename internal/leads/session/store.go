package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	leadserrors "radar/internal/leads/errors"
	"radar/pkg/model"
)

type Store interface {
	Create(criteria model.FilterCriteria) model.Session
	Get(id string) (model.Session, error)
	Save(s model.Session) error
	Delete(id string) error
	Len() int
	Stop()
}

type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewInMemoryStore keeps sessions until they sit idle longer than ttl.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	s := newStore(ttl, time.Now)
	go s.cleanup(time.Hour)
	return s
}

func newStore(ttl time.Duration, now func() time.Time) *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]model.Session),
		ttl:      ttl,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

func (s *InMemoryStore) Create(criteria model.FilterCriteria) model.Session {
	now := s.now()
	sess := model.Session{
		ID:        uuid.New().String(),
		Criteria:  criteria,
		PageIndex: 0,
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *InMemoryStore) Get(id string) (model.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return model.Session{}, fmt.Errorf("%w: %s", leadserrors.ErrSessionNotFound, id)
	}

	if s.expired(sess) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return model.Session{}, fmt.Errorf("%w: %s", leadserrors.ErrSessionNotFound, id)
	}

	return sess, nil
}

func (s *InMemoryStore) Save(sess model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; !ok {
		return fmt.Errorf("%w: %s", leadserrors.ErrSessionNotFound, sess.ID)
	}

	sess.LastSeen = s.now()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", leadserrors.ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *InMemoryStore) expired(sess model.Session) bool {
	return s.now().Sub(sess.LastSeen) > s.ttl
}

func (s *InMemoryStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
		}
	}
}

func (s *InMemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *InMemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
