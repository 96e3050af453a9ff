package repository

import (
	"fmt"

	"github.com/yourorg/unihaven/internal/domain"
)

// MemoryBoardRepository implements domain.BoardRepository
type MemoryBoardRepository struct {
	store *memoryStore[*domain.ExpenseBoard]
}

// NewMemoryBoardRepository creates an empty board repository
func NewMemoryBoardRepository() *MemoryBoardRepository {
	return &MemoryBoardRepository{store: newMemoryStore[*domain.ExpenseBoard]()}
}

// Save stores or overwrites a board
func (r *MemoryBoardRepository) Save(board *domain.ExpenseBoard) error {
	r.store.put(board.ID, board)
	return nil
}

// GetByID retrieves a board by id
func (r *MemoryBoardRepository) GetByID(id string) (*domain.ExpenseBoard, error) {
	b, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return b, nil
}

// List returns all boards in insertion order
func (r *MemoryBoardRepository) List() ([]*domain.ExpenseBoard, error) {
	return r.store.list(), nil
}
