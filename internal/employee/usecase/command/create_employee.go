package command

import (
	"fmt"
	"strings"

	"github.com/okoval/bookstore/internal/employee/domain"
)

// CreateEmployeeCommand represents the command to create an employee
type CreateEmployeeCommand struct {
	Name     string
	Position string
	Phone    string
	Email    string
}

// CreateEmployeeHandler handles create employee command
type CreateEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewCreateEmployeeHandler creates a new create employee handler
func NewCreateEmployeeHandler(repo domain.EmployeeRepository) *CreateEmployeeHandler {
	return &CreateEmployeeHandler{repo: repo}
}

// Handle executes the create employee command
func (h *CreateEmployeeHandler) Handle(cmd CreateEmployeeCommand) (*domain.Employee, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, domain.ErrNameRequired
	}

	if !domain.ValidEmail(cmd.Email) {
		return nil, domain.ErrInvalidEmail
	}

	employee := &domain.Employee{
		Name:     strings.TrimSpace(cmd.Name),
		Position: strings.TrimSpace(cmd.Position),
		Phone:    strings.TrimSpace(cmd.Phone),
		Email:    strings.TrimSpace(cmd.Email),
	}

	if err := h.repo.Create(employee); err != nil {
		if err == domain.ErrEmailTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}
