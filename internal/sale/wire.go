//go:build wireinject
// +build wireinject

package sale

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/sale/delivery/http"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.SaleHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewSaleHandler,
	)
	return nil, nil
}
