package query

import (
	"github.com/okoval/bookstore/internal/employee/domain"
)

// GetEmployeeQuery represents the query to get an employee
type GetEmployeeQuery struct {
	ID uint
}

// GetEmployeeHandler handles get employee query
type GetEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewGetEmployeeHandler creates a new get employee handler
func NewGetEmployeeHandler(repo domain.EmployeeRepository) *GetEmployeeHandler {
	return &GetEmployeeHandler{repo: repo}
}

// Handle executes the get employee query
func (h *GetEmployeeHandler) Handle(query GetEmployeeQuery) (*domain.Employee, error) {
	if query.ID == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return h.repo.FindByID(query.ID)
}
