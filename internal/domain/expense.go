package domain

import "time"

// SplitMethod selects how an expense is divided among roommates
type SplitMethod string

const (
	SplitEqual SplitMethod = "equal"
	SplitOther SplitMethod = "other"
)

// Expense is a single cost item on a board. Immutable after creation except
// for payment confirmations.
type Expense struct {
	ID            string
	Category      string
	Amount        float64
	DueDate       time.Time
	SplitMethod   SplitMethod
	CreatorID     string
	Confirmations map[string]bool // roommate id -> paid; not consulted by invoicing
}

// Share returns what each of n roommates owes. Equal split divides by the
// roommate count; any other method (or an empty roommate list) returns the
// full amount unsplit.
func (e *Expense) Share(roommates []*Roommate) float64 {
	if e.SplitMethod == SplitEqual && len(roommates) > 0 {
		return e.Amount / float64(len(roommates))
	}
	return e.Amount
}

// ExpenseBoard accumulates the expenses of one unit in insertion order
type ExpenseBoard struct {
	ID       string // unit id
	Expenses []*Expense
}

// Summary totals expenses by category. Derived, never stored.
func (b *ExpenseBoard) Summary() map[string]float64 {
	out := make(map[string]float64, len(b.Expenses))
	for _, e := range b.Expenses {
		out[e.Category] += e.Amount
	}
	return out
}

// Invoice totals a board's expenses at a point in time. Confirmed and
// unconfirmed expenses are not distinguished.
type Invoice struct {
	ID         string
	IssueDate  time.Time
	Total      float64
	ExpenseIDs []string
}

// BoardRepository defines data access for expense boards
type BoardRepository interface {
	Save(board *ExpenseBoard) error
	GetByID(id string) (*ExpenseBoard, error)
	List() ([]*ExpenseBoard, error)
}
