//go:build wireinject
// +build wireinject

package report

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/report/delivery/http"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ReportHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewReportHandler,
	)
	return nil, nil
}
