package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
)

// AgreementService handles the co-living agreement lifecycle:
// draft -> pending_signatures -> active -> cancelled
type AgreementService struct {
	agreements domain.AgreementRepository
	logger     *slog.Logger
}

// NewAgreementService creates a new agreement service
func NewAgreementService(agreements domain.AgreementRepository, logger *slog.Logger) *AgreementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgreementService{agreements: agreements, logger: logger}
}

// CreateDraft stores a new agreement in draft status
func (s *AgreementService) CreateDraft(id, unitID, terms string, attachments []domain.Attachment, deadline time.Time) (*domain.CoLivingAgreement, error) {
	agreement := &domain.CoLivingAgreement{
		ID:          id,
		Terms:       terms,
		Attachments: attachments,
		Status:      domain.AgreementDraft,
		Deadline:    deadline,
		UnitID:      unitID,
	}
	if err := s.agreements.Save(agreement); err != nil {
		return nil, err
	}
	s.logger.Info("agreement drafted", slog.String("agreement_id", id))
	return agreement, nil
}

// SendForSignatures moves a draft into the signing phase
func (s *AgreementService) SendForSignatures(id string) error {
	return s.transition(id, domain.AgreementPendingSignatures)
}

// Sign appends the signer and activates the agreement once the signer list
// is non-empty. A single signature activates regardless of how many parties
// should sign, and the same account may sign more than once.
func (s *AgreementService) Sign(id, signerID string) error {
	agreement, err := s.agreements.GetByID(id)
	if err != nil {
		return err
	}
	if !agreement.Status.CanTransition(domain.AgreementActive) {
		return fmt.Errorf("agreement %s: %s -> %s: %w", id, agreement.Status, domain.AgreementActive, domain.ErrInvalidTransition)
	}

	agreement.SignerIDs = append(agreement.SignerIDs, signerID)
	if len(agreement.SignerIDs) > 0 {
		agreement.Status = domain.AgreementActive
	}
	if err := s.agreements.Save(agreement); err != nil {
		return err
	}

	s.logger.Info("agreement signed",
		slog.String("agreement_id", id),
		slog.String("signer_id", signerID),
		slog.Int("signatures", len(agreement.SignerIDs)),
	)
	return nil
}

// Cancel terminally cancels an agreement from any non-cancelled state
func (s *AgreementService) Cancel(id string) error {
	return s.transition(id, domain.AgreementCancelled)
}

// Get retrieves an agreement by id
func (s *AgreementService) Get(id string) (*domain.CoLivingAgreement, error) {
	return s.agreements.GetByID(id)
}

func (s *AgreementService) transition(id string, to domain.AgreementStatus) error {
	agreement, err := s.agreements.GetByID(id)
	if err != nil {
		return err
	}
	if !agreement.Status.CanTransition(to) {
		return fmt.Errorf("agreement %s: %s -> %s: %w", id, agreement.Status, to, domain.ErrInvalidTransition)
	}
	agreement.Status = to
	if err := s.agreements.Save(agreement); err != nil {
		return err
	}
	s.logger.Info("agreement status changed",
		slog.String("agreement_id", id),
		slog.String("status", string(to)),
	)
	return nil
}
