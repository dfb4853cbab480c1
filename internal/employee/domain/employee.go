package domain

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"
)

// Employee represents a bookstore employee (domain model)
type Employee struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Position  string         `json:"position"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"` // Soft delete
}

// TableName specifies the table name
func (Employee) TableName() string {
	return "employees"
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s has the local@domain.tld shape
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

var (
	// ErrEmployeeNotFound is returned when the referenced employee does not
	// exist or is soft-deleted
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNameRequired is returned when the employee name is empty
	ErrNameRequired = errors.New("employee name is required")

	// ErrInvalidEmail is returned when the email does not look like an address
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmailTaken is returned when another employee already uses the email
	ErrEmailTaken = errors.New("email already taken")
)

// EmployeeRepository defines the contract for employee data access
type EmployeeRepository interface {
	Create(employee *Employee) error
	FindByID(id uint) (*Employee, error)
	FindByEmail(email string) (*Employee, error)
	FindAll(limit, offset int) ([]Employee, error)
	Update(employee *Employee) error
	Delete(id uint) error
	Count() (int64, error)
}
