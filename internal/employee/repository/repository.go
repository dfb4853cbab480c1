package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/employee/domain"
)

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Employee{})
}

func (r *GormEmployeeRepository) Create(employee *domain.Employee) error {
	err := r.db.Create(employee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *GormEmployeeRepository) FindByID(id uint) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) FindByEmail(email string) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.Where("email = ?", email).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) FindAll(limit, offset int) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) Update(employee *domain.Employee) error {
	err := r.db.Save(employee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *GormEmployeeRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *GormEmployeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Employee{}).Count(&count).Error
	return count, err
}
