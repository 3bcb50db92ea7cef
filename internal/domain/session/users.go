package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/facgure/launchpad/internal/infrastructure/storage"
	"github.com/facgure/launchpad/internal/shared/types"
)

const userCollection = "users"

// Record pairs a user with its password hash. Hashes never leave this
// package.
type Record struct {
	User         types.User `json:"user"`
	PasswordHash string     `json:"password_hash"`
}

// UserStore holds the credential table, persisted through the storage
// seam and cached in memory.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*Record
	store   storage.Store
}

// demo account seeds; created on first start when the store is empty
var demoSeeds = []struct {
	user     types.User
	password string
}{
	{
		user: types.User{
			ID:      "admin-1",
			Name:    "Admin User",
			Email:   "admin@facgure.com",
			Role:    types.RoleAdmin,
			Avatar:  "/avatars/avatar-1.png",
			Company: "Facgure Technologies",
		},
		password: "admin123",
	},
	{
		user: types.User{
			ID:      "user-1",
			Name:    "อภิชาติ นิลมณีติ",
			Email:   "user@facgure.com",
			Role:    types.RoleUser,
			Avatar:  "/diverse-group.png",
			Company: "บริษัท โซลาร์เอเชีย.เท็ค จำกัด",
		},
		password: "user123",
	},
}

// NewUserStore loads the credential table, seeding the demo accounts when
// the backing store is empty.
func NewUserStore(store storage.Store) (*UserStore, error) {
	s := &UserStore{
		byEmail: make(map[string]*Record),
		store:   store,
	}

	keys, err := store.List(userCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	for _, key := range keys {
		data, err := store.Get(userCollection, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load user %s: %w", key, err)
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user %s: %w", key, err)
		}
		s.byEmail[rec.User.Email] = &rec
	}

	if len(s.byEmail) == 0 {
		if err := s.seedDemoUsers(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *UserStore) seedDemoUsers() error {
	for _, seed := range demoSeeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		rec := &Record{User: seed.user, PasswordHash: string(hash)}
		s.byEmail[seed.user.Email] = rec
		if err := s.persist(rec); err != nil {
			return err
		}
	}
	return nil
}

// GetByEmail returns the record for an email, if present
func (s *UserStore) GetByEmail(email string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byEmail[email]
	if !ok {
		return nil, false
	}
	recCopy := *rec
	return &recCopy, true
}

// VerifyPassword checks a candidate password against the stored hash
func (s *UserStore) VerifyPassword(email, password string) (*types.User, error) {
	s.mu.RLock()
	rec, ok := s.byEmail[email]
	s.mu.RUnlock()

	if !ok {
		return nil, authErr(CodeInvalidCredentials, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, authErr(CodeInvalidCredentials, "invalid email or password")
	}

	user := rec.User
	return &user, nil
}

// SetPassword replaces a user's password hash
func (s *UserStore) SetPassword(email, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byEmail[email]
	if !ok {
		return authErr(CodeUserNotFound, "no account for that email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	rec.PasswordHash = string(hash)
	return s.persist(rec)
}

func (s *UserStore) persist(rec *Record) error {
	if s.store == nil {
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.store.Put(userCollection, rec.User.ID, data); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}
