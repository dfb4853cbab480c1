package command

import (
	"fmt"
	"strings"

	"github.com/okoval/bookstore/internal/employee/domain"
)

// UpdateEmployeeCommand represents the command to update an employee.
// Empty fields keep their prior values.
type UpdateEmployeeCommand struct {
	ID       uint
	Name     string
	Position string
	Phone    string
	Email    string
}

// UpdateEmployeeHandler handles update employee command
type UpdateEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewUpdateEmployeeHandler creates a new update employee handler
func NewUpdateEmployeeHandler(repo domain.EmployeeRepository) *UpdateEmployeeHandler {
	return &UpdateEmployeeHandler{repo: repo}
}

// Handle executes the update employee command
func (h *UpdateEmployeeHandler) Handle(cmd UpdateEmployeeCommand) (*domain.Employee, error) {
	employee, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(cmd.Name); name != "" {
		employee.Name = name
	}
	if position := strings.TrimSpace(cmd.Position); position != "" {
		employee.Position = position
	}
	if phone := strings.TrimSpace(cmd.Phone); phone != "" {
		employee.Phone = phone
	}
	if email := strings.TrimSpace(cmd.Email); email != "" {
		if !domain.ValidEmail(email) {
			return nil, domain.ErrInvalidEmail
		}
		employee.Email = email
	}

	if err := h.repo.Update(employee); err != nil {
		if err == domain.ErrEmailTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee, nil
}
