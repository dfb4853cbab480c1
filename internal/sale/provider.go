package sale

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/sale/domain"
	"github.com/okoval/bookstore/internal/sale/repository"
	"github.com/okoval/bookstore/internal/sale/usecase/command"
	"github.com/okoval/bookstore/internal/sale/usecase/query"
)

// ProvideSaleRepository provides the ledger repository wrapped with tracing
func ProvideSaleRepository(db *gorm.DB) domain.SaleRepository {
	return repository.NewGormSaleRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSaleRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateSaleHandler,
	command.NewReverseSaleHandler,
	command.NewAmendSaleHandler,
	query.NewGetSaleHandler,
	query.NewListSalesHandler,
)
