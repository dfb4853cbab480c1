//go:build wireinject
// +build wireinject

package employee

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/employee/delivery/http"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.EmployeeHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewEmployeeHandler,
	)
	return nil, nil
}
