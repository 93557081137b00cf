// Package flash keeps one-shot notification messages between a redirect and
// the page that follows it.
package flash

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName = "backoffice_flash"
	ttl        = 5 * time.Minute
)

// Level tells the page how to style a message.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

type Store interface {
	Set(ctx context.Context, key string, msg Message) error
	// Pop returns the pending message for key and removes it. ok is false
	// when there is none.
	Pop(ctx context.Context, key string) (msg Message, ok bool, err error)
}

// MemoryStore is the in-process store used when redis is not configured.
type MemoryStore struct {
	mu       sync.Mutex
	messages map[string]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	msg     Message
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Set(_ context.Context, key string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[key] = memoryEntry{msg: msg, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, key string) (Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.messages[key]
	if !ok {
		return Message{}, false, nil
	}
	delete(s.messages, key)
	if s.now().After(e.expires) {
		return Message{}, false, nil
	}
	return e.msg, true, nil
}

// SessionKey returns the flash key of the browser, issuing a cookie on first
// use.
func SessionKey(c *gin.Context) string {
	if v, err := c.Cookie(CookieName); err == nil && v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	key := uuid.NewString()
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}
