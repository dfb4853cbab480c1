package query

import (
	"github.com/okoval/bookstore/internal/sale/domain"
)

// ListSalesQuery represents the query to list sales, optionally for one
// employee
type ListSalesQuery struct {
	EmployeeID uint
	Limit      int
	Offset     int
}

// ListSalesHandler handles list sales query
type ListSalesHandler struct {
	repo domain.SaleRepository
}

// NewListSalesHandler creates a new list sales handler
func NewListSalesHandler(repo domain.SaleRepository) *ListSalesHandler {
	return &ListSalesHandler{repo: repo}
}

// Handle executes the list sales query
func (h *ListSalesHandler) Handle(query ListSalesQuery) ([]domain.Sale, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.EmployeeID != 0 {
		return h.repo.FindByEmployeeID(query.EmployeeID, query.Limit, query.Offset)
	}
	return h.repo.FindAll(query.Limit, query.Offset)
}
