package domain

import "time"

// RequestStatus is the lifecycle state of a co-living request
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Approved and rejected are terminal; re-applying the current status passes.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestPending, RequestApproved, RequestRejected},
	RequestApproved: {RequestApproved},
	RequestRejected: {RequestRejected},
}

// CanTransition reports whether the request may move to the given status
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// CoLivingRequest is a resident's application to join a listing
type CoLivingRequest struct {
	ID          string
	Status      RequestStatus
	Message     string
	CreatedAt   time.Time
	RequesterID string
	ListingID   string
}

// AgreementStatus is the lifecycle state of a co-living agreement
type AgreementStatus string

const (
	AgreementDraft             AgreementStatus = "draft"
	AgreementPendingSignatures AgreementStatus = "pending_signatures"
	AgreementActive            AgreementStatus = "active"
	AgreementCancelled         AgreementStatus = "cancelled"
)

// Cancelled is terminal and reachable from every other state.
var agreementTransitions = map[AgreementStatus][]AgreementStatus{
	AgreementDraft:             {AgreementDraft, AgreementPendingSignatures, AgreementCancelled},
	AgreementPendingSignatures: {AgreementPendingSignatures, AgreementActive, AgreementCancelled},
	AgreementActive:            {AgreementActive, AgreementCancelled},
	AgreementCancelled:         {},
}

// CanTransition reports whether the agreement may move to the given status
func (s AgreementStatus) CanTransition(to AgreementStatus) bool {
	for _, next := range agreementTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// CoLivingAgreement is the multi-party contract governing shared occupancy.
// A single signature activates it; nothing tracks how many parties must
// actually sign, and the same account may sign twice.
type CoLivingAgreement struct {
	ID          string
	Terms       string
	Attachments []Attachment
	Status      AgreementStatus
	Deadline    time.Time
	UnitID      string
	SignerIDs   []string
}

// Roommate represents a resident occupying a unit
type Roommate struct {
	ID       string
	JoinedAt time.Time
}

// Active reports whether the roommate's join date has passed
func (r *Roommate) Active() bool {
	return time.Now().After(r.JoinedAt)
}

// RequestRepository defines data access for co-living requests
type RequestRepository interface {
	Save(request *CoLivingRequest) error
	GetByID(id string) (*CoLivingRequest, error)
	List() ([]*CoLivingRequest, error)
}

// AgreementRepository defines data access for co-living agreements
type AgreementRepository interface {
	Save(agreement *CoLivingAgreement) error
	GetByID(id string) (*CoLivingAgreement, error)
	List() ([]*CoLivingAgreement, error)
}
