package query

import (
	"github.com/okoval/bookstore/internal/employee/domain"
)

// ListEmployeesQuery represents the query to list employees
type ListEmployeesQuery struct {
	Limit  int
	Offset int
}

// ListEmployeesHandler handles list employees query
type ListEmployeesHandler struct {
	repo domain.EmployeeRepository
}

// NewListEmployeesHandler creates a new list employees handler
func NewListEmployeesHandler(repo domain.EmployeeRepository) *ListEmployeesHandler {
	return &ListEmployeesHandler{repo: repo}
}

// Handle executes the list employees query
func (h *ListEmployeesHandler) Handle(query ListEmployeesQuery) ([]domain.Employee, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	return h.repo.FindAll(query.Limit, query.Offset)
}
