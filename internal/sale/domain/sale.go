package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Sale is one ledger entry: a quantity of one book sold by one employee.
// BookID and QuantitySold are fixed at creation; the stock movement they
// represent can only be undone by reversing the whole sale.
type Sale struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	ReceiptID    string         `json:"receipt_id" gorm:"uniqueIndex;not null"`
	EmployeeID   uint           `json:"employee_id" gorm:"not null;index"`
	BookID       uint           `json:"book_id" gorm:"not null;index"`
	SaleDate     time.Time      `json:"sale_date" gorm:"not null"`
	TotalPrice   float64        `json:"total_price" gorm:"not null"`
	QuantitySold int            `json:"quantity_sold" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// SaleDateFormat is the wire format for sale dates
const SaleDateFormat = "2006-01-02"

// SaleAmendment carries the fields of a sale that may change after creation.
// Nil fields keep their prior values.
type SaleAmendment struct {
	EmployeeID *uint
	SaleDate   *time.Time
	TotalPrice *float64
}

// SaleRepository is the ledger contract. Each mutating call is one atomic
// unit of work: the stock change and the sale row change commit together or
// not at all.
type SaleRepository interface {
	// CreateSale decrements the book's stock and inserts the sale.
	// Errors: ErrEmployeeNotFound, ErrBookNotFound, ErrInsufficientStock.
	CreateSale(ctx context.Context, sale *Sale) error

	// ReverseSale restores the book's stock and soft-deletes the sale.
	// The transition is one-way. Errors: ErrSaleNotFound.
	ReverseSale(ctx context.Context, saleID uint) (*Sale, error)

	// AmendSale applies the amendment to an active sale. Book quantity is
	// never touched. Errors: ErrSaleNotFound, ErrEmployeeNotFound.
	AmendSale(ctx context.Context, saleID uint, amendment SaleAmendment) (*Sale, error)

	FindByID(id uint) (*Sale, error)
	FindByReceiptID(receiptID string) (*Sale, error)
	FindAll(limit, offset int) ([]Sale, error)
	FindByEmployeeID(employeeID uint, limit, offset int) ([]Sale, error)
	Count() (int64, error)
}
