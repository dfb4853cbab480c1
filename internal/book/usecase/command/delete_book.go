package command

import (
	"github.com/okoval/bookstore/internal/book/domain"
)

// DeleteBookCommand represents the command to soft-delete a book
type DeleteBookCommand struct {
	ID uint
}

// DeleteBookHandler handles delete book command
type DeleteBookHandler struct {
	repo domain.BookRepository
}

// NewDeleteBookHandler creates a new delete book handler
func NewDeleteBookHandler(repo domain.BookRepository) *DeleteBookHandler {
	return &DeleteBookHandler{repo: repo}
}

// Handle executes the delete book command. Sales referencing the book stay in
// the ledger; the row is only marked deleted.
func (h *DeleteBookHandler) Handle(cmd DeleteBookCommand) error {
	return h.repo.Delete(cmd.ID)
}
