package domain

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Book represents a title in the store catalog
type Book struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ISBN      string         `json:"isbn" gorm:"uniqueIndex;not null"`
	Title     string         `json:"title" gorm:"not null"`
	Author    string         `json:"author" gorm:"not null"`
	Genre     string         `json:"genre"`
	Year      int            `json:"year"`
	CostPrice float64        `json:"cost_price" gorm:"not null"`
	SalePrice float64        `json:"sale_price" gorm:"not null"`
	Quantity  int            `json:"quantity" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Book) TableName() string {
	return "books"
}

// InStock reports whether at least n copies are available
func (b *Book) InStock(n int) bool {
	return b.Quantity >= n
}

// Publication year bounds accepted by the catalog
const (
	MinYear = 1500
	MaxYear = 2100
)

// ValidISBN reports whether s is 10 to 20 digits, hyphens ignored
func ValidISBN(s string) bool {
	raw := strings.ReplaceAll(s, "-", "")
	if len(raw) < 10 || len(raw) > 20 {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var (
	// ErrBookNotFound is returned when the referenced book does not exist or
	// is soft-deleted
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidISBN is returned when the ISBN is not 10-20 digits
	ErrInvalidISBN = errors.New("invalid ISBN")

	// ErrISBNTaken is returned when another book already carries the ISBN
	ErrISBNTaken = errors.New("ISBN already taken")

	// ErrTitleRequired is returned when the title is empty
	ErrTitleRequired = errors.New("book title is required")

	// ErrAuthorRequired is returned when the author is empty
	ErrAuthorRequired = errors.New("book author is required")

	// ErrInvalidYear is returned when the publication year is out of range
	ErrInvalidYear = errors.New("publication year out of range")

	// ErrInvalidPrice is returned when a price is not positive
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrInvalidQuantity is returned when the stocked quantity is negative
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
)

// BookRepository defines the contract for book data access
type BookRepository interface {
	Create(book *Book) error
	FindByID(id uint) (*Book, error)
	FindByISBN(isbn string) (*Book, error)
	FindAll(limit, offset int) ([]Book, error)
	FindByGenre(genre string, limit, offset int) ([]Book, error)
	Update(book *Book) error
	Delete(id uint) error
	Count() (int64, error)
}
