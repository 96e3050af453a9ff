package repository

import (
	"fmt"

	"github.com/yourorg/unihaven/internal/domain"
)

// MemoryAccountRepository implements domain.AccountRepository over an
// in-memory keyed store
type MemoryAccountRepository struct {
	store *memoryStore[*domain.Account]
}

// NewMemoryAccountRepository creates an empty account repository
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{store: newMemoryStore[*domain.Account]()}
}

// Create stores a new account
func (r *MemoryAccountRepository) Create(account *domain.Account) error {
	r.store.put(account.ID, account)
	return nil
}

// GetByID retrieves an account by id
func (r *MemoryAccountRepository) GetByID(id string) (*domain.Account, error) {
	a, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// GetByUsername scans stored accounts for a username match
func (r *MemoryAccountRepository) GetByUsername(username string) (*domain.Account, error) {
	for _, a := range r.store.list() {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, fmt.Errorf("account %q: %w", username, domain.ErrNotFound)
}

// Update overwrites a stored account
func (r *MemoryAccountRepository) Update(account *domain.Account) error {
	if _, ok := r.store.get(account.ID); !ok {
		return fmt.Errorf("account %s: %w", account.ID, domain.ErrNotFound)
	}
	r.store.put(account.ID, account)
	return nil
}

// List returns all accounts in insertion order
func (r *MemoryAccountRepository) List() ([]*domain.Account, error) {
	return r.store.list(), nil
}
