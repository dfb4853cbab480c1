package command

import (
	"github.com/okoval/bookstore/internal/employee/domain"
)

// DeleteEmployeeCommand represents the command to soft-delete an employee
type DeleteEmployeeCommand struct {
	ID uint
}

// DeleteEmployeeHandler handles delete employee command
type DeleteEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewDeleteEmployeeHandler creates a new delete employee handler
func NewDeleteEmployeeHandler(repo domain.EmployeeRepository) *DeleteEmployeeHandler {
	return &DeleteEmployeeHandler{repo: repo}
}

// Handle executes the delete employee command. The row is kept as history;
// only the delete marker is set.
func (h *DeleteEmployeeHandler) Handle(cmd DeleteEmployeeCommand) error {
	return h.repo.Delete(cmd.ID)
}
