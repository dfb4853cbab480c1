package command

import (
	"context"
	"fmt"
	"time"

	"github.com/okoval/bookstore/internal/sale/domain"
)

// AmendSaleCommand represents the command to amend a sale. Only the employee
// reference, the sale date and the total amount can change; the sold book and
// quantity are fixed at creation. Nil fields keep their prior values.
type AmendSaleCommand struct {
	ID         uint
	EmployeeID *uint
	SaleDate   *string
	TotalPrice *float64
}

// AmendSaleHandler handles amend sale command
type AmendSaleHandler struct {
	repo domain.SaleRepository
}

// NewAmendSaleHandler creates a new amend sale handler
func NewAmendSaleHandler(repo domain.SaleRepository) *AmendSaleHandler {
	return &AmendSaleHandler{repo: repo}
}

// Handle executes the amend sale command
func (h *AmendSaleHandler) Handle(ctx context.Context, cmd AmendSaleCommand) (*domain.Sale, error) {
	if cmd.ID == 0 {
		return nil, domain.ErrSaleNotFound
	}

	amendment := domain.SaleAmendment{}

	if cmd.EmployeeID != nil {
		if *cmd.EmployeeID == 0 {
			return nil, domain.ErrEmployeeNotFound
		}
		amendment.EmployeeID = cmd.EmployeeID
	}
	if cmd.SaleDate != nil {
		parsed, err := time.Parse(domain.SaleDateFormat, *cmd.SaleDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		amendment.SaleDate = &parsed
	}
	if cmd.TotalPrice != nil {
		if *cmd.TotalPrice <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		amendment.TotalPrice = cmd.TotalPrice
	}

	sale, err := h.repo.AmendSale(ctx, cmd.ID, amendment)
	if err != nil {
		switch err {
		case domain.ErrSaleNotFound, domain.ErrEmployeeNotFound:
			return nil, err
		}
		return nil, fmt.Errorf("failed to amend sale: %w", err)
	}

	return sale, nil
}
