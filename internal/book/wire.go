//go:build wireinject
// +build wireinject

package book

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/book/delivery/http"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.BookHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewBookHandler,
	)
	return nil, nil
}
