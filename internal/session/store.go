package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"gorm.io/gorm"

	"fleet_console/internal/models"
)

// Session is one authenticated browser session: the backend-issued user
// identity plus the bearer token attached to every API request.
type Session struct {
	ID    string
	User  models.User
	Token string
}

// BearerToken satisfies api.TokenSource.
func (s *Session) BearerToken() string {
	return s.Token
}

// Store holds sessions durably so a console restart does not log admins out.
type Store interface {
	// Login persists the user and token under the given session id.
	Login(id string, user models.User, token string) error
	// Get returns the session, or false when none exists for the id.
	Get(id string) (*Session, bool)
	// Logout removes all persisted state for the session atomically.
	Logout(id string) error
}

// NewSessionID returns a random id suitable for the session cookie.
func NewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("session: rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// Record is the persisted row backing GormStore. It carries no DeletedAt:
// logout must hard-delete so the unique Key is free for a reused id.
type Record struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Key       string `gorm:"uniqueIndex"`
	User      string // JSON-encoded models.User
	Token     string
}

// GormStore persists sessions in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Login(id string, user models.User, token string) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key = ?", id).Delete(&Record{}).Error; err != nil {
			return err
		}
		return tx.Create(&Record{Key: id, User: string(encoded), Token: token}).Error
	})
}

func (s *GormStore) Get(id string) (*Session, bool) {
	var rec Record
	if err := s.db.Where("key = ?", id).First(&rec).Error; err != nil {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(rec.User), &user); err != nil {
		return nil, false
	}
	return &Session{ID: id, User: user, Token: rec.Token}, true
}

func (s *GormStore) Logout(id string) error {
	return s.db.Where("key = ?", id).Delete(&Record{}).Error
}

// MemStore is an in-memory Store used by tests.
type MemStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemStore() *MemStore {
	return &MemStore{sessions: make(map[string]*Session)}
}

func (s *MemStore) Login(id string, user models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &Session{ID: id, User: user, Token: token}
	return nil
}

func (s *MemStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *MemStore) Logout(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
