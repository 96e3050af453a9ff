package test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yourorg/unihaven/internal/handler"
	"github.com/yourorg/unihaven/internal/infrastructure/logger"
	"github.com/yourorg/unihaven/internal/repository"
	"github.com/yourorg/unihaven/internal/service"
	"github.com/yourorg/unihaven/pkg/cache"
)

// TestServerHelper wires the full in-memory stack behind an httptest server
type TestServerHelper struct {
	Server *httptest.Server
	Logger *slog.Logger
	Mux    *http.ServeMux

	AuthService *service.AuthService
}

func NewTestServer(t *testing.T) *TestServerHelper {
	t.Helper()
	log := logger.NewLogger("error")
	mux := http.NewServeMux()

	accountRepo := repository.NewMemoryAccountRepository()
	sessionRepo := repository.NewMemorySessionRepository()
	unitRepo := repository.NewMemoryUnitRepository()
	listingRepo := repository.NewMemoryListingRepository()
	requestRepo := repository.NewMemoryRequestRepository()
	agreementRepo := repository.NewMemoryAgreementRepository()
	boardRepo := repository.NewMemoryBoardRepository()

	authService := service.NewAuthService(accountRepo, sessionRepo, time.Hour, log)
	listingService := service.NewListingService(listingRepo, unitRepo, accountRepo, log)
	requestService := service.NewRequestService(requestRepo, log)
	agreementService := service.NewAgreementService(agreementRepo, log)
	expenseService := service.NewExpenseService(boardRepo, log)

	listingHandler := handler.NewListingHandler(listingService, cache.New(), time.Second, log)
	requestHandler := handler.NewRequestHandler(requestService, log)
	agreementHandler := handler.NewAgreementHandler(agreementService, log)
	expenseHandler := handler.NewExpenseHandler(expenseService, log)

	mux.HandleFunc("POST /api/units", listingHandler.CreateUnit)
	mux.HandleFunc("POST /api/listings", listingHandler.Create)
	mux.HandleFunc("GET /api/listings/published", listingHandler.ListPublished)
	mux.HandleFunc("GET /api/listings/{id}", listingHandler.Get)
	mux.HandleFunc("POST /api/listings/{id}/{action}", listingHandler.Transition)
	mux.HandleFunc("POST /api/requests", requestHandler.Submit)
	mux.HandleFunc("POST /api/requests/{id}/{decision}", requestHandler.Decide)
	mux.HandleFunc("POST /api/agreements", agreementHandler.Create)
	mux.HandleFunc("POST /api/agreements/{id}/send", agreementHandler.Send)
	mux.HandleFunc("POST /api/agreements/{id}/sign", agreementHandler.Sign)
	mux.HandleFunc("POST /api/boards/{unitId}/expenses", expenseHandler.Add)
	mux.HandleFunc("POST /api/boards/{unitId}/invoice", expenseHandler.Invoice)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	server := httptest.NewServer(mux)

	return &TestServerHelper{
		Server:      server,
		Logger:      log,
		Mux:         mux,
		AuthService: authService,
	}
}

func (h *TestServerHelper) Close() {
	h.Server.Close()
}

func (h *TestServerHelper) URL() string {
	return h.Server.URL
}

// PostJSON marshals the payload and POSTs it, decoding the JSON response
// into out when out is non-nil
func (h *TestServerHelper) PostJSON(t *testing.T, path string, payload interface{}, out interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(h.URL()+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", path, err)
		}
	}
	return resp
}

// AssertStatusCode helper function
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}
