package command

import (
	"fmt"
	"strings"

	"github.com/okoval/bookstore/internal/book/domain"
)

// CreateBookCommand represents the command to add a book to the catalog
type CreateBookCommand struct {
	ISBN      string
	Title     string
	Author    string
	Genre     string
	Year      int
	CostPrice float64
	SalePrice float64
	Quantity  int
}

// CreateBookHandler handles create book command
type CreateBookHandler struct {
	repo domain.BookRepository
}

// NewCreateBookHandler creates a new create book handler
func NewCreateBookHandler(repo domain.BookRepository) *CreateBookHandler {
	return &CreateBookHandler{repo: repo}
}

// Handle executes the create book command
func (h *CreateBookHandler) Handle(cmd CreateBookCommand) (*domain.Book, error) {
	if !domain.ValidISBN(cmd.ISBN) {
		return nil, domain.ErrInvalidISBN
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, domain.ErrTitleRequired
	}
	if strings.TrimSpace(cmd.Author) == "" {
		return nil, domain.ErrAuthorRequired
	}
	if cmd.Year < domain.MinYear || cmd.Year > domain.MaxYear {
		return nil, domain.ErrInvalidYear
	}
	if cmd.CostPrice <= 0 || cmd.SalePrice <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if cmd.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	book := &domain.Book{
		ISBN:      strings.TrimSpace(cmd.ISBN),
		Title:     strings.TrimSpace(cmd.Title),
		Author:    strings.TrimSpace(cmd.Author),
		Genre:     strings.TrimSpace(cmd.Genre),
		Year:      cmd.Year,
		CostPrice: cmd.CostPrice,
		SalePrice: cmd.SalePrice,
		Quantity:  cmd.Quantity,
	}

	if err := h.repo.Create(book); err != nil {
		if err == domain.ErrISBNTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}
