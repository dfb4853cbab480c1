package domain

import "errors"

var (
	// ErrSaleNotFound is returned when the sale does not exist or was
	// already reversed
	ErrSaleNotFound = errors.New("sale not found")

	// ErrEmployeeNotFound is returned when the referenced employee does not
	// exist or is soft-deleted
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrBookNotFound is returned when the referenced book does not exist or
	// is soft-deleted
	ErrBookNotFound = errors.New("book not found")

	// ErrInsufficientStock is returned when the sale quantity exceeds the
	// book's current stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned when the sale quantity is not positive
	ErrInvalidQuantity = errors.New("quantity sold must be positive")

	// ErrInvalidAmount is returned when the total price is not positive
	ErrInvalidAmount = errors.New("total price must be positive")

	// ErrInvalidDate is returned when the sale date does not parse as a
	// calendar date
	ErrInvalidDate = errors.New("invalid sale date")
)
