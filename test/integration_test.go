package test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// TestHealthEndpoint verifies health check endpoint
func TestHealthEndpoint(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	resp, err := http.Get(server.URL() + "/healthz")
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	defer resp.Body.Close()

	AssertStatusCode(t, resp, http.StatusOK)

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("Expected 'ok', got '%s'", string(body))
	}
}

// TestListingPublishFlow walks a listing from creation to the published
// browse result
func TestListingPublishFlow(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	if _, err := server.AuthService.Register("prov-1", "landlady", "l@uni.edu", "secret123", "provider"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp := server.PostJSON(t, "/api/units", map[string]interface{}{
		"id": "unit-1", "address": "12 College Walk", "rooms": 3, "available": true,
	}, nil)
	AssertStatusCode(t, resp, http.StatusCreated)

	resp = server.PostJSON(t, "/api/listings", map[string]interface{}{
		"id": "lst-1", "ownerId": "prov-1", "unitId": "unit-1",
		"title": "Sunny room near campus", "price": 450.0, "minStay": 90,
	}, nil)
	AssertStatusCode(t, resp, http.StatusCreated)

	// Draft listings are not browsable
	browse, err := http.Get(server.URL() + "/api/listings/published")
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	defer browse.Body.Close()
	var published []map[string]interface{}
	json.NewDecoder(browse.Body).Decode(&published)
	if len(published) != 0 {
		t.Fatalf("expected no published listings, got %d", len(published))
	}

	resp = server.PostJSON(t, "/api/listings/lst-1/publish", nil, nil)
	AssertStatusCode(t, resp, http.StatusOK)

	browse2, err := http.Get(server.URL() + "/api/listings/published")
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	defer browse2.Body.Close()
	published = nil
	json.NewDecoder(browse2.Body).Decode(&published)
	if len(published) != 1 {
		t.Fatalf("expected 1 published listing, got %d", len(published))
	}
}

// TestInvalidTransitionRejected verifies the lifecycle guard surfaces as 409
func TestInvalidTransitionRejected(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	if _, err := server.AuthService.Register("prov-1", "landlady", "l@uni.edu", "secret123", "provider"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	server.PostJSON(t, "/api/units", map[string]interface{}{"id": "unit-1"}, nil)
	server.PostJSON(t, "/api/listings", map[string]interface{}{
		"id": "lst-1", "ownerId": "prov-1", "unitId": "unit-1", "title": "room",
	}, nil)

	// Hiding a draft is not a legal transition
	resp := server.PostJSON(t, "/api/listings/lst-1/hide", nil, nil)
	AssertStatusCode(t, resp, http.StatusConflict)
}

// TestRequestAndAgreementFlow covers request approval and agreement signing
func TestRequestAndAgreementFlow(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	resp := server.PostJSON(t, "/api/requests", map[string]interface{}{
		"id": "req-1", "listingId": "lst-1", "requesterId": "res-1", "message": "interested",
	}, nil)
	AssertStatusCode(t, resp, http.StatusCreated)

	resp = server.PostJSON(t, "/api/requests/req-1/approve", nil, nil)
	AssertStatusCode(t, resp, http.StatusOK)

	// Rejecting after approval violates the one-shot decision rule
	resp = server.PostJSON(t, "/api/requests/req-1/reject", nil, nil)
	AssertStatusCode(t, resp, http.StatusConflict)

	resp = server.PostJSON(t, "/api/agreements", map[string]interface{}{
		"id": "agr-1", "unitId": "unit-1", "terms": "no smoking indoors",
	}, nil)
	AssertStatusCode(t, resp, http.StatusCreated)

	resp = server.PostJSON(t, "/api/agreements/agr-1/send", nil, nil)
	AssertStatusCode(t, resp, http.StatusOK)

	var agreement map[string]interface{}
	resp = server.PostJSON(t, "/api/agreements/agr-1/sign", map[string]string{"signerId": "res-1"}, &agreement)
	AssertStatusCode(t, resp, http.StatusOK)
	if agreement["Status"] != "active" {
		t.Fatalf("expected active agreement after first signature, got %v", agreement["Status"])
	}
}

// TestExpenseInvoiceFlow records expenses and totals them on an invoice
func TestExpenseInvoiceFlow(t *testing.T) {
	server := NewTestServer(t)
	defer server.Close()

	resp := server.PostJSON(t, "/api/boards/unit-1/expenses", map[string]interface{}{
		"id": "exp-1", "category": "rent", "amount": 500.0, "splitMethod": "equal",
	}, nil)
	AssertStatusCode(t, resp, http.StatusCreated)

	resp = server.PostJSON(t, "/api/boards/unit-1/expenses", map[string]interface{}{
		"id": "exp-2", "category": "internet", "amount": 25.0, "splitMethod": "equal",
	}, nil)
	AssertStatusCode(t, resp, http.StatusCreated)

	var invoice map[string]interface{}
	resp = server.PostJSON(t, "/api/boards/unit-1/invoice", nil, &invoice)
	AssertStatusCode(t, resp, http.StatusCreated)
	if invoice["Total"] != 525.0 {
		t.Fatalf("expected total 525, got %v", invoice["Total"])
	}
}
