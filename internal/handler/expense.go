package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/service"
)

// ExpenseHandler handles per-unit expense board endpoints
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *slog.Logger
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseHandler{expenseService: expenseService, logger: logger}
}

// AddExpenseRequest represents the payload for a new expense
type AddExpenseRequest struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"dueDate"`
	SplitMethod string    `json:"splitMethod"`
	CreatorID   string    `json:"creatorId"`
}

// Add handles POST /api/boards/{unitId}/expenses
func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "expense id required")
		return
	}

	expense := &domain.Expense{
		ID:          req.ID,
		Category:    req.Category,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		SplitMethod: domain.SplitMethod(req.SplitMethod),
		CreatorID:   req.CreatorID,
	}
	if err := h.expenseService.AddExpense(r.PathValue("unitId"), expense); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// Board handles GET /api/boards/{unitId}
func (h *ExpenseHandler) Board(w http.ResponseWriter, r *http.Request) {
	board, err := h.expenseService.Board(r.PathValue("unitId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// Summary handles GET /api/boards/{unitId}/summary
func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.expenseService.Summary(r.PathValue("unitId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// SharesRequest names the roommates the split is computed over
type SharesRequest struct {
	RoommateIDs []string `json:"roommateIds"`
}

// Shares handles POST /api/boards/{unitId}/shares
func (h *ExpenseHandler) Shares(w http.ResponseWriter, r *http.Request) {
	var req SharesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	roommates := make([]*domain.Roommate, 0, len(req.RoommateIDs))
	for _, id := range req.RoommateIDs {
		roommates = append(roommates, &domain.Roommate{ID: id})
	}

	shares, err := h.expenseService.Shares(r.PathValue("unitId"), roommates)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shares)
}

// ConfirmRequest names the paying roommate
type ConfirmRequest struct {
	RoommateID string `json:"roommateId"`
}

// Confirm handles POST /api/boards/{unitId}/confirm
func (h *ExpenseHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.RoommateID == "" {
		writeError(w, http.StatusBadRequest, "roommateId is required")
		return
	}

	if err := h.expenseService.ConfirmPayment(r.PathValue("unitId"), req.RoommateID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "payment confirmed"})
}

// Invoice handles POST /api/boards/{unitId}/invoice
func (h *ExpenseHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.expenseService.GenerateInvoice(r.PathValue("unitId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}
