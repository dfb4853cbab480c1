package command

import (
	"context"
	"fmt"

	"github.com/okoval/bookstore/internal/sale/domain"
)

// ReverseSaleCommand represents the command to reverse a sale
type ReverseSaleCommand struct {
	ID uint
}

// ReverseSaleHandler handles reverse sale command
type ReverseSaleHandler struct {
	repo domain.SaleRepository
}

// NewReverseSaleHandler creates a new reverse sale handler
func NewReverseSaleHandler(repo domain.SaleRepository) *ReverseSaleHandler {
	return &ReverseSaleHandler{repo: repo}
}

// Handle executes the reverse sale command. The sale is soft-deleted and the
// sold quantity goes back on the book's stock.
func (h *ReverseSaleHandler) Handle(ctx context.Context, cmd ReverseSaleCommand) (*domain.Sale, error) {
	if cmd.ID == 0 {
		return nil, domain.ErrSaleNotFound
	}

	sale, err := h.repo.ReverseSale(ctx, cmd.ID)
	if err != nil {
		if err == domain.ErrSaleNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reverse sale: %w", err)
	}

	return sale, nil
}
