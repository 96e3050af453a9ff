package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yourorg/unihaven/internal/domain"
)

// ExpenseService manages per-unit expense boards, shares and invoices
type ExpenseService struct {
	boards domain.BoardRepository
	logger *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(boards domain.BoardRepository, logger *slog.Logger) *ExpenseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{boards: boards, logger: logger}
}

// Board returns the board for a unit, creating it on first use
func (s *ExpenseService) Board(boardID string) (*domain.ExpenseBoard, error) {
	board, err := s.boards.GetByID(boardID)
	if err == nil {
		return board, nil
	}
	board = &domain.ExpenseBoard{ID: boardID}
	if err := s.boards.Save(board); err != nil {
		return nil, err
	}
	return board, nil
}

// AddExpense appends an expense to a board. Expenses are immutable after
// this except for payment confirmations.
func (s *ExpenseService) AddExpense(boardID string, expense *domain.Expense) error {
	if expense.ID == "" {
		return errors.New("expense id is required")
	}
	board, err := s.Board(boardID)
	if err != nil {
		return err
	}
	if expense.Confirmations == nil {
		expense.Confirmations = make(map[string]bool)
	}
	board.Expenses = append(board.Expenses, expense)
	if err := s.boards.Save(board); err != nil {
		return err
	}
	s.logger.Info("expense added",
		slog.String("board_id", boardID),
		slog.String("expense_id", expense.ID),
		slog.Float64("amount", expense.Amount),
	)
	return nil
}

// Summary totals the board's expenses by category
func (s *ExpenseService) Summary(boardID string) (map[string]float64, error) {
	board, err := s.Board(boardID)
	if err != nil {
		return nil, err
	}
	return board.Summary(), nil
}

// Shares computes what each roommate owes per expense, keyed by expense id
func (s *ExpenseService) Shares(boardID string, roommates []*domain.Roommate) (map[string]float64, error) {
	board, err := s.Board(boardID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(board.Expenses))
	for _, e := range board.Expenses {
		out[e.ID] = e.Share(roommates)
	}
	return out, nil
}

// ConfirmPayment records that a roommate has paid their share of every
// expense on the board
func (s *ExpenseService) ConfirmPayment(boardID, roommateID string) error {
	board, err := s.Board(boardID)
	if err != nil {
		return err
	}
	for _, e := range board.Expenses {
		if e.Confirmations == nil {
			e.Confirmations = make(map[string]bool)
		}
		e.Confirmations[roommateID] = true
	}
	if err := s.boards.Save(board); err != nil {
		return err
	}
	s.logger.Info("payment confirmed",
		slog.String("board_id", boardID),
		slog.String("roommate_id", roommateID),
	)
	return nil
}

// GenerateInvoice totals every recorded expense. Confirmed and unconfirmed
// expenses are not distinguished.
func (s *ExpenseService) GenerateInvoice(boardID string) (*domain.Invoice, error) {
	board, err := s.Board(boardID)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		ID:        uuid.NewString(),
		IssueDate: time.Now(),
	}
	for _, e := range board.Expenses {
		invoice.Total += e.Amount
		invoice.ExpenseIDs = append(invoice.ExpenseIDs, e.ID)
	}

	s.logger.Info("invoice generated",
		slog.String("board_id", boardID),
		slog.String("invoice_id", invoice.ID),
		slog.Float64("total", invoice.Total),
	)
	return invoice, nil
}
