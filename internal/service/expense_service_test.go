package service

import (
	"testing"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func newExpenseFixture(t *testing.T) *ExpenseService {
	t.Helper()
	return NewExpenseService(repository.NewMemoryBoardRepository(), nil)
}

func roommates(n int) []*domain.Roommate {
	out := make([]*domain.Roommate, n)
	for i := range out {
		out[i] = &domain.Roommate{ID: string(rune('a' + i)), JoinedAt: time.Now().Add(-time.Hour)}
	}
	return out
}

func TestEqualSplitShares(t *testing.T) {
	s := newExpenseFixture(t)

	err := s.AddExpense("unit-1", &domain.Expense{
		ID:          "exp-1",
		Category:    "utilities",
		Amount:      100,
		SplitMethod: domain.SplitEqual,
		CreatorID:   "u1",
	})
	if err != nil {
		t.Fatalf("add expense failed: %v", err)
	}

	shares, err := s.Shares("unit-1", roommates(4))
	if err != nil {
		t.Fatalf("shares failed: %v", err)
	}
	if shares["exp-1"] != 25 {
		t.Fatalf("expected 25 per roommate, got %v", shares["exp-1"])
	}

	// Empty roommate list falls back to the full amount
	shares, err = s.Shares("unit-1", nil)
	if err != nil {
		t.Fatalf("shares failed: %v", err)
	}
	if shares["exp-1"] != 100 {
		t.Fatalf("expected full amount with no roommates, got %v", shares["exp-1"])
	}
}

func TestOtherSplitReturnsFullAmount(t *testing.T) {
	s := newExpenseFixture(t)
	if err := s.AddExpense("unit-1", &domain.Expense{
		ID:          "exp-1",
		Category:    "rent",
		Amount:      600,
		SplitMethod: domain.SplitOther,
	}); err != nil {
		t.Fatalf("add expense failed: %v", err)
	}

	shares, err := s.Shares("unit-1", roommates(3))
	if err != nil {
		t.Fatalf("shares failed: %v", err)
	}
	if shares["exp-1"] != 600 {
		t.Fatalf("expected unsplit amount, got %v", shares["exp-1"])
	}
}

func TestSummaryByCategory(t *testing.T) {
	s := newExpenseFixture(t)
	for _, e := range []*domain.Expense{
		{ID: "exp-1", Category: "utilities", Amount: 40, SplitMethod: domain.SplitEqual},
		{ID: "exp-2", Category: "utilities", Amount: 60, SplitMethod: domain.SplitEqual},
		{ID: "exp-3", Category: "groceries", Amount: 30, SplitMethod: domain.SplitEqual},
	} {
		if err := s.AddExpense("unit-1", e); err != nil {
			t.Fatalf("add expense failed: %v", err)
		}
	}

	summary, err := s.Summary("unit-1")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary["utilities"] != 100 || summary["groceries"] != 30 {
		t.Fatalf("unexpected summary: %v", summary)
	}
}

func TestInvoiceIgnoresConfirmations(t *testing.T) {
	s := newExpenseFixture(t)
	for _, e := range []*domain.Expense{
		{ID: "exp-1", Category: "rent", Amount: 500, SplitMethod: domain.SplitEqual},
		{ID: "exp-2", Category: "internet", Amount: 25, SplitMethod: domain.SplitEqual},
	} {
		if err := s.AddExpense("unit-1", e); err != nil {
			t.Fatalf("add expense failed: %v", err)
		}
	}

	if err := s.ConfirmPayment("unit-1", "roommate-a"); err != nil {
		t.Fatalf("confirm payment failed: %v", err)
	}

	// The invoice total includes confirmed and unconfirmed expenses alike
	invoice, err := s.GenerateInvoice("unit-1")
	if err != nil {
		t.Fatalf("generate invoice failed: %v", err)
	}
	if invoice.Total != 525 {
		t.Fatalf("expected total 525, got %v", invoice.Total)
	}
	if len(invoice.ExpenseIDs) != 2 {
		t.Fatalf("expected 2 expenses on invoice, got %d", len(invoice.ExpenseIDs))
	}

	board, err := s.Board("unit-1")
	if err != nil {
		t.Fatalf("board failed: %v", err)
	}
	if !board.Expenses[0].Confirmations["roommate-a"] {
		t.Fatalf("expected confirmation to be recorded")
	}
}

func TestBoardCreatedOnFirstUse(t *testing.T) {
	s := newExpenseFixture(t)
	board, err := s.Board("unit-9")
	if err != nil {
		t.Fatalf("board failed: %v", err)
	}
	if board.ID != "unit-9" || len(board.Expenses) != 0 {
		t.Fatalf("unexpected board: %+v", board)
	}
}
