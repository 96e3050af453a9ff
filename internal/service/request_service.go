package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
)

// RequestService handles co-living requests against listings
type RequestService struct {
	requests domain.RequestRepository
	logger   *slog.Logger
}

// NewRequestService creates a new request service
func NewRequestService(requests domain.RequestRepository, logger *slog.Logger) *RequestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequestService{requests: requests, logger: logger}
}

// Submit stores a new pending request
func (s *RequestService) Submit(id, listingID, requesterID, message string) (*domain.CoLivingRequest, error) {
	request := &domain.CoLivingRequest{
		ID:          id,
		Status:      domain.RequestPending,
		Message:     message,
		CreatedAt:   time.Now(),
		RequesterID: requesterID,
		ListingID:   listingID,
	}
	if err := s.requests.Save(request); err != nil {
		return nil, err
	}
	s.logger.Info("request submitted",
		slog.String("request_id", id),
		slog.String("listing_id", listingID),
		slog.String("requester_id", requesterID),
	)
	return request, nil
}

// Approve terminally approves a pending request
func (s *RequestService) Approve(id string) error {
	return s.transition(id, domain.RequestApproved)
}

// Reject terminally rejects a pending request
func (s *RequestService) Reject(id string) error {
	return s.transition(id, domain.RequestRejected)
}

// Get retrieves a request by id
func (s *RequestService) Get(id string) (*domain.CoLivingRequest, error) {
	return s.requests.GetByID(id)
}

// GetByListing returns all requests targeting a listing
func (s *RequestService) GetByListing(listingID string) ([]*domain.CoLivingRequest, error) {
	all, err := s.requests.List()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.CoLivingRequest, 0)
	for _, r := range all {
		if r.ListingID == listingID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RequestService) transition(id string, to domain.RequestStatus) error {
	request, err := s.requests.GetByID(id)
	if err != nil {
		return err
	}
	if !request.Status.CanTransition(to) {
		return fmt.Errorf("request %s: %s -> %s: %w", id, request.Status, to, domain.ErrInvalidTransition)
	}
	request.Status = to
	if err := s.requests.Save(request); err != nil {
		return err
	}
	s.logger.Info("request status changed",
		slog.String("request_id", id),
		slog.String("status", string(to)),
	)
	return nil
}
