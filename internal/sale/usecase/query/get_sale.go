package query

import (
	"github.com/okoval/bookstore/internal/sale/domain"
)

// GetSaleQuery represents the query to get a sale
type GetSaleQuery struct {
	ID uint
}

// GetSaleHandler handles get sale query
type GetSaleHandler struct {
	repo domain.SaleRepository
}

// NewGetSaleHandler creates a new get sale handler
func NewGetSaleHandler(repo domain.SaleRepository) *GetSaleHandler {
	return &GetSaleHandler{repo: repo}
}

// Handle executes the get sale query
func (h *GetSaleHandler) Handle(query GetSaleQuery) (*domain.Sale, error) {
	if query.ID == 0 {
		return nil, domain.ErrSaleNotFound
	}
	return h.repo.FindByID(query.ID)
}
