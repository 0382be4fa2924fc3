package session

import "sync"

// Store maps user ids to their conversation state. A single logical worker
// drives the bot, but the mutex keeps the store safe if the dispatcher is
// ever run with concurrent update handling.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the user's session, creating an empty one if needed.
func (s *Store) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{}
		s.sessions[userID] = sess
	}
	return sess
}

// Peek returns the user's session without creating one.
func (s *Store) Peek(userID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Clear drops the user's conversation state entirely. Used on /start, on
// cancel, and on every terminal workflow transition.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
