package report

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/report/domain"
	"github.com/okoval/bookstore/internal/report/repository"
	"github.com/okoval/bookstore/internal/report/usecase/query"
)

// ProvideReportRepository provides the report repository
func ProvideReportRepository(db *gorm.DB) domain.ReportRepository {
	return repository.NewGormReportRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReportRepository,
)

var UsecaseSet = wire.NewSet(
	query.NewSalesReportHandler,
	query.NewLeaderboardHandler,
	query.NewProfitHandler,
)
