package service

import (
	"fmt"
	"log/slog"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/observability/metrics"
)

// ListingService handles the rental-listing lifecycle
type ListingService struct {
	listings domain.ListingRepository
	units    domain.UnitRepository
	accounts domain.AccountRepository
	logger   *slog.Logger
}

// ListingData carries the fields a new listing is created with
type ListingData struct {
	Title       string
	Description string
	Price       float64
	MinStay     int
	MaxStay     int
	Images      []string
}

// NewListingService creates a new listing service
func NewListingService(
	listings domain.ListingRepository,
	units domain.UnitRepository,
	accounts domain.AccountRepository,
	logger *slog.Logger,
) *ListingService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ListingService{
		listings: listings,
		units:    units,
		accounts: accounts,
		logger:   logger,
	}
}

// Create constructs a draft listing for a unit and records it against the
// provider's profile
func (s *ListingService) Create(id, ownerID, unitID string, data ListingData) (*domain.Listing, error) {
	owner, err := s.accounts.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.units.GetByID(unitID); err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		ID:          id,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		MinStay:     data.MinStay,
		MaxStay:     data.MaxStay,
		Images:      data.Images,
		Status:      domain.ListingDraft,
		UnitID:      unitID,
		OwnerID:     ownerID,
	}
	if err := s.listings.Save(listing); err != nil {
		return nil, err
	}

	if owner.Provider != nil {
		owner.Provider.ListingIDs = append(owner.Provider.ListingIDs, listing.ID)
		_ = s.accounts.Update(owner)
	}

	s.logger.Info("listing created",
		slog.String("listing_id", listing.ID),
		slog.String("owner_id", ownerID),
		slog.String("unit_id", unitID),
	)
	return listing, nil
}

// Publish makes a listing visible to residents
func (s *ListingService) Publish(id string) error {
	if err := s.transition(id, domain.ListingPublished); err != nil {
		return err
	}
	metrics.ObserveListingTransition("published")
	return nil
}

// Hide withdraws a published listing without deleting it
func (s *ListingService) Hide(id string) error {
	if err := s.transition(id, domain.ListingHidden); err != nil {
		return err
	}
	metrics.ObserveListingTransition("hidden")
	return nil
}

// Delete marks a listing deleted and removes it from the collection
func (s *ListingService) Delete(id string) error {
	if err := s.transition(id, domain.ListingDeleted); err != nil {
		return err
	}
	if err := s.listings.Delete(id); err != nil {
		return err
	}
	metrics.ObserveListingTransition("deleted")
	s.logger.Info("listing deleted", slog.String("listing_id", id))
	return nil
}

// Edit overwrites only the supplied fields
func (s *ListingService) Edit(id string, update domain.ListingUpdate) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		listing.Title = *update.Title
	}
	if update.Description != nil {
		listing.Description = *update.Description
	}
	if update.Price != nil {
		listing.Price = *update.Price
	}
	if update.MinStay != nil {
		listing.MinStay = *update.MinStay
	}
	if update.MaxStay != nil {
		listing.MaxStay = *update.MaxStay
	}
	if update.Images != nil {
		listing.Images = update.Images
	}

	if err := s.listings.Save(listing); err != nil {
		return nil, err
	}
	s.logger.Info("listing edited", slog.String("listing_id", id))
	return listing, nil
}

// Get retrieves a listing by id
func (s *ListingService) Get(id string) (*domain.Listing, error) {
	return s.listings.GetByID(id)
}

// AddUnit registers a housing unit that listings may advertise
func (s *ListingService) AddUnit(unit *domain.Unit) error {
	if err := s.units.Save(unit); err != nil {
		return err
	}
	s.logger.Info("unit added", slog.String("unit_id", unit.ID))
	return nil
}

// GetUnit retrieves a unit by id
func (s *ListingService) GetUnit(id string) (*domain.Unit, error) {
	return s.units.GetByID(id)
}

// FindAll returns all stored listings in insertion order
func (s *ListingService) FindAll() ([]*domain.Listing, error) {
	return s.listings.List()
}

// FindPublished returns only listings residents may browse
func (s *ListingService) FindPublished() ([]*domain.Listing, error) {
	all, err := s.listings.List()
	if err != nil {
		return nil, err
	}
	published := make([]*domain.Listing, 0, len(all))
	for _, l := range all {
		if l.Status == domain.ListingPublished {
			published = append(published, l)
		}
	}
	return published, nil
}

func (s *ListingService) transition(id string, to domain.ListingStatus) error {
	listing, err := s.listings.GetByID(id)
	if err != nil {
		return err
	}
	if !listing.Status.CanTransition(to) {
		return fmt.Errorf("listing %s: %s -> %s: %w", id, listing.Status, to, domain.ErrInvalidTransition)
	}
	listing.Status = to
	if err := s.listings.Save(listing); err != nil {
		return err
	}
	s.logger.Info("listing status changed",
		slog.String("listing_id", id),
		slog.String("status", string(to)),
	)
	return nil
}
