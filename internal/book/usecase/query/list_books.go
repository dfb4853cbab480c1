package query

import (
	"github.com/okoval/bookstore/internal/book/domain"
)

// ListBooksQuery represents the query to list books, optionally by genre
type ListBooksQuery struct {
	Genre  string
	Limit  int
	Offset int
}

// ListBooksHandler handles list books query
type ListBooksHandler struct {
	repo domain.BookRepository
}

// NewListBooksHandler creates a new list books handler
func NewListBooksHandler(repo domain.BookRepository) *ListBooksHandler {
	return &ListBooksHandler{repo: repo}
}

// Handle executes the list books query
func (h *ListBooksHandler) Handle(query ListBooksQuery) ([]domain.Book, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Genre != "" {
		return h.repo.FindByGenre(query.Genre, query.Limit, query.Offset)
	}
	return h.repo.FindAll(query.Limit, query.Offset)
}
