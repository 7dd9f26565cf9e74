package store

import (
	"context"
	"sync"
	"time"

	"phishguard/internal/logger"
	"phishguard/models"
)

// memoryStore is the default CredentialStore: a process-lifetime map, no
// persistence across restarts. Guarded by a mutex because concurrent map
// writes are fatal in Go; everything else about the demo's credential
// handling (plaintext passwords, no expiry) is preserved as-is.
type memoryStore struct {
	mu     sync.RWMutex
	users  map[string]models.User
	logger *logger.Logger
}

// NewMemoryStore constructs an empty in-memory CredentialStore.
func NewMemoryStore(logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating in-memory credential store")
	return &memoryStore{
		users:  make(map[string]models.User),
		logger: logger,
	}
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Login]; exists {
		return ErrLoginAlreadyExists
	}

	user.CreatedAt = time.Now()
	m.users[user.Login] = user

	return nil
}

func (m *memoryStore) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[login]
	if !exists {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}
