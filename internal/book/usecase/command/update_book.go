package command

import (
	"fmt"
	"strings"

	"github.com/okoval/bookstore/internal/book/domain"
)

// UpdateBookCommand represents the command to update a book. Empty strings and
// nil numeric fields keep their prior values.
type UpdateBookCommand struct {
	ID        uint
	ISBN      string
	Title     string
	Author    string
	Genre     string
	Year      *int
	CostPrice *float64
	SalePrice *float64
	Quantity  *int
}

// UpdateBookHandler handles update book command
type UpdateBookHandler struct {
	repo domain.BookRepository
}

// NewUpdateBookHandler creates a new update book handler
func NewUpdateBookHandler(repo domain.BookRepository) *UpdateBookHandler {
	return &UpdateBookHandler{repo: repo}
}

// Handle executes the update book command
func (h *UpdateBookHandler) Handle(cmd UpdateBookCommand) (*domain.Book, error) {
	book, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if isbn := strings.TrimSpace(cmd.ISBN); isbn != "" {
		if !domain.ValidISBN(isbn) {
			return nil, domain.ErrInvalidISBN
		}
		book.ISBN = isbn
	}
	if title := strings.TrimSpace(cmd.Title); title != "" {
		book.Title = title
	}
	if author := strings.TrimSpace(cmd.Author); author != "" {
		book.Author = author
	}
	if genre := strings.TrimSpace(cmd.Genre); genre != "" {
		book.Genre = genre
	}
	if cmd.Year != nil {
		if *cmd.Year < domain.MinYear || *cmd.Year > domain.MaxYear {
			return nil, domain.ErrInvalidYear
		}
		book.Year = *cmd.Year
	}
	if cmd.CostPrice != nil {
		if *cmd.CostPrice <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		book.CostPrice = *cmd.CostPrice
	}
	if cmd.SalePrice != nil {
		if *cmd.SalePrice <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		book.SalePrice = *cmd.SalePrice
	}
	if cmd.Quantity != nil {
		if *cmd.Quantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		book.Quantity = *cmd.Quantity
	}

	if err := h.repo.Update(book); err != nil {
		if err == domain.ErrISBNTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return book, nil
}
