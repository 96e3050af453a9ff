package repository

import (
	"fmt"

	"github.com/yourorg/unihaven/internal/domain"
)

// MemoryUnitRepository implements domain.UnitRepository
type MemoryUnitRepository struct {
	store *memoryStore[*domain.Unit]
}

// NewMemoryUnitRepository creates an empty unit repository
func NewMemoryUnitRepository() *MemoryUnitRepository {
	return &MemoryUnitRepository{store: newMemoryStore[*domain.Unit]()}
}

// Save stores or overwrites a unit
func (r *MemoryUnitRepository) Save(unit *domain.Unit) error {
	r.store.put(unit.ID, unit)
	return nil
}

// GetByID retrieves a unit by id
func (r *MemoryUnitRepository) GetByID(id string) (*domain.Unit, error) {
	u, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("unit %s: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

// List returns all units in insertion order
func (r *MemoryUnitRepository) List() ([]*domain.Unit, error) {
	return r.store.list(), nil
}

// MemoryListingRepository implements domain.ListingRepository
type MemoryListingRepository struct {
	store *memoryStore[*domain.Listing]
}

// NewMemoryListingRepository creates an empty listing repository
func NewMemoryListingRepository() *MemoryListingRepository {
	return &MemoryListingRepository{store: newMemoryStore[*domain.Listing]()}
}

// Save stores or overwrites a listing
func (r *MemoryListingRepository) Save(listing *domain.Listing) error {
	r.store.put(listing.ID, listing)
	return nil
}

// GetByID retrieves a listing by id
func (r *MemoryListingRepository) GetByID(id string) (*domain.Listing, error) {
	l, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

// Delete removes a listing from the collection
func (r *MemoryListingRepository) Delete(id string) error {
	if !r.store.delete(id) {
		return fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all listings in insertion order
func (r *MemoryListingRepository) List() ([]*domain.Listing, error) {
	return r.store.list(), nil
}
