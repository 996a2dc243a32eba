package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "session_token"

// Session is the per-login context. Sessions live in memory only: a process
// restart signs every admin out, and nothing is shared across instances.
type Session struct {
	Token     string
	Admin     bool
	CreatedAt time.Time
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

func (s *SessionStore) Create(admin bool) *Session {
	session := &Session{
		Token:     uuid.New().String(),
		Admin:     admin,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session

	return session
}

func (s *SessionStore) Get(token string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	return session, ok
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// RequireAdmin is a middleware guarding the dashboard routes. The session is
// attached to the request context so handlers never touch shared state.
func (s *Server) RequireAdmin(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorAuthRequired)
		return
	}

	session, ok := s.sessions.Get(token)
	if !ok || !session.Admin {
		abortWithEncoding(c, http.StatusUnauthorized, errorAuthRequired)
		return
	}

	c.Set("session", session)
	c.Next()
}
