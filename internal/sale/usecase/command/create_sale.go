package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okoval/bookstore/internal/sale/domain"
)

// CreateSaleCommand represents the command to record a sale. TotalPrice is
// the caller-supplied transaction amount; SaleDate defaults to today when
// empty.
type CreateSaleCommand struct {
	EmployeeID   uint
	BookID       uint
	QuantitySold int
	TotalPrice   float64
	SaleDate     string
}

// CreateSaleHandler handles create sale command
type CreateSaleHandler struct {
	repo domain.SaleRepository
}

// NewCreateSaleHandler creates a new create sale handler
func NewCreateSaleHandler(repo domain.SaleRepository) *CreateSaleHandler {
	return &CreateSaleHandler{repo: repo}
}

// Handle executes the create sale command
func (h *CreateSaleHandler) Handle(ctx context.Context, cmd CreateSaleCommand) (*domain.Sale, error) {
	if cmd.EmployeeID == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	if cmd.BookID == 0 {
		return nil, domain.ErrBookNotFound
	}
	if cmd.QuantitySold <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if cmd.TotalPrice <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	saleDate := time.Now()
	if cmd.SaleDate != "" {
		parsed, err := time.Parse(domain.SaleDateFormat, cmd.SaleDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		saleDate = parsed
	}

	sale := &domain.Sale{
		ReceiptID:    uuid.New().String(),
		EmployeeID:   cmd.EmployeeID,
		BookID:       cmd.BookID,
		SaleDate:     saleDate,
		TotalPrice:   cmd.TotalPrice,
		QuantitySold: cmd.QuantitySold,
	}

	if err := h.repo.CreateSale(ctx, sale); err != nil {
		switch err {
		case domain.ErrEmployeeNotFound, domain.ErrBookNotFound, domain.ErrInsufficientStock:
			return nil, err
		}
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return sale, nil
}
