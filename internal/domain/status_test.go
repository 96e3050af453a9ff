package domain

import "testing"

func TestListingTransitions(t *testing.T) {
	cases := []struct {
		from, to ListingStatus
		ok       bool
	}{
		{ListingDraft, ListingPublished, true},
		{ListingPublished, ListingHidden, true},
		{ListingHidden, ListingPublished, true},
		{ListingPublished, ListingPublished, true},
		{ListingDraft, ListingHidden, false},
		{ListingDeleted, ListingPublished, false},
		{ListingDeleted, ListingDeleted, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestAgreementTransitions(t *testing.T) {
	cases := []struct {
		from, to AgreementStatus
		ok       bool
	}{
		{AgreementDraft, AgreementPendingSignatures, true},
		{AgreementPendingSignatures, AgreementActive, true},
		{AgreementActive, AgreementCancelled, true},
		{AgreementDraft, AgreementCancelled, true},
		{AgreementDraft, AgreementActive, false},
		{AgreementCancelled, AgreementDraft, false},
		{AgreementCancelled, AgreementCancelled, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestRequestTransitions(t *testing.T) {
	if !RequestPending.CanTransition(RequestApproved) {
		t.Errorf("pending -> approved should be allowed")
	}
	if !RequestApproved.CanTransition(RequestApproved) {
		t.Errorf("re-applying approved should be allowed")
	}
	if RequestApproved.CanTransition(RequestRejected) {
		t.Errorf("approved -> rejected should be blocked")
	}
}

func TestCompatibilityScore(t *testing.T) {
	c := &Compatibility{ID: "c1", Details: map[string]float64{"cleanliness": 4, "study": 2}}
	c.Calculate()
	if c.Score != 3 {
		t.Errorf("expected score 3, got %v", c.Score)
	}

	empty := &Compatibility{ID: "c2"}
	empty.Calculate()
	if empty.Score != 0 {
		t.Errorf("expected zero score for empty details, got %v", empty.Score)
	}
}
