package employee

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/employee/domain"
	"github.com/okoval/bookstore/internal/employee/repository"
	"github.com/okoval/bookstore/internal/employee/usecase/command"
	"github.com/okoval/bookstore/internal/employee/usecase/query"
)

// ProvideEmployeeRepository provides the employee repository
func ProvideEmployeeRepository(db *gorm.DB) domain.EmployeeRepository {
	return repository.NewGormEmployeeRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideEmployeeRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateEmployeeHandler,
	command.NewUpdateEmployeeHandler,
	command.NewDeleteEmployeeHandler,
	query.NewGetEmployeeHandler,
	query.NewListEmployeesHandler,
)
