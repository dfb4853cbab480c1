package book

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/book/domain"
	"github.com/okoval/bookstore/internal/book/repository"
	"github.com/okoval/bookstore/internal/book/usecase/command"
	"github.com/okoval/bookstore/internal/book/usecase/query"
)

// ProvideBookRepository provides the book repository
func ProvideBookRepository(db *gorm.DB) domain.BookRepository {
	return repository.NewGormBookRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBookRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateBookHandler,
	command.NewUpdateBookHandler,
	command.NewDeleteBookHandler,
	query.NewGetBookHandler,
	query.NewListBooksHandler,
)
