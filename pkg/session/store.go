package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions in memory. They are lost on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create stores a copy of initial under a fresh id.
func (s *Store) Create(initial Session) Session {
	initial.Id = uuid.NewString()

	s.mu.Lock()
	s.sessions[initial.Id] = initial
	open := len(s.sessions)
	s.mu.Unlock()

	log.Debugf("session %s created, %d open", initial.Id, open)
	return initial
}

func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// Update applies fn to a copy of the session and stores the result only when fn succeeds.
func (s *Store) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if err := fn(&sess); err != nil {
		return Session{}, err
	}
	s.sessions[id] = sess
	return sess, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
