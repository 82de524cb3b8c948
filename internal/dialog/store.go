package dialog

import "sync"

// Store holds the in-progress sessions, one per actor. Sessions are
// memory-resident: a restart drops them and the next reply starts a fresh
// dialog.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
	}
}

func (s *Store) Get(actorID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[actorID]

	return sess, ok
}

func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ActorID] = sess
}

func (s *Store) Delete(actorID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, actorID)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
