package query

import (
	"github.com/okoval/bookstore/internal/book/domain"
)

// GetBookQuery represents the query to get a book
type GetBookQuery struct {
	ID uint
}

// GetBookHandler handles get book query
type GetBookHandler struct {
	repo domain.BookRepository
}

// NewGetBookHandler creates a new get book handler
func NewGetBookHandler(repo domain.BookRepository) *GetBookHandler {
	return &GetBookHandler{repo: repo}
}

// Handle executes the get book query
func (h *GetBookHandler) Handle(query GetBookQuery) (*domain.Book, error) {
	if query.ID == 0 {
		return nil, domain.ErrBookNotFound
	}
	return h.repo.FindByID(query.ID)
}
