package repository

import (
	"fmt"

	"github.com/yourorg/unihaven/internal/domain"
)

// MemoryRequestRepository implements domain.RequestRepository
type MemoryRequestRepository struct {
	store *memoryStore[*domain.CoLivingRequest]
}

// NewMemoryRequestRepository creates an empty request repository
func NewMemoryRequestRepository() *MemoryRequestRepository {
	return &MemoryRequestRepository{store: newMemoryStore[*domain.CoLivingRequest]()}
}

// Save stores or overwrites a request
func (r *MemoryRequestRepository) Save(request *domain.CoLivingRequest) error {
	r.store.put(request.ID, request)
	return nil
}

// GetByID retrieves a request by id
func (r *MemoryRequestRepository) GetByID(id string) (*domain.CoLivingRequest, error) {
	req, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	}
	return req, nil
}

// List returns all requests in insertion order
func (r *MemoryRequestRepository) List() ([]*domain.CoLivingRequest, error) {
	return r.store.list(), nil
}

// MemoryAgreementRepository implements domain.AgreementRepository
type MemoryAgreementRepository struct {
	store *memoryStore[*domain.CoLivingAgreement]
}

// NewMemoryAgreementRepository creates an empty agreement repository
func NewMemoryAgreementRepository() *MemoryAgreementRepository {
	return &MemoryAgreementRepository{store: newMemoryStore[*domain.CoLivingAgreement]()}
}

// Save stores or overwrites an agreement
func (r *MemoryAgreementRepository) Save(agreement *domain.CoLivingAgreement) error {
	r.store.put(agreement.ID, agreement)
	return nil
}

// GetByID retrieves an agreement by id
func (r *MemoryAgreementRepository) GetByID(id string) (*domain.CoLivingAgreement, error) {
	a, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("agreement %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// List returns all agreements in insertion order
func (r *MemoryAgreementRepository) List() ([]*domain.CoLivingAgreement, error) {
	return r.store.list(), nil
}
