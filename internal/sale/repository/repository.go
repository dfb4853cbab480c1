package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	bookdomain "github.com/okoval/bookstore/internal/book/domain"
	employeedomain "github.com/okoval/bookstore/internal/employee/domain"
	"github.com/okoval/bookstore/internal/sale/domain"
)

// GormSaleRepository is the ledger over the shared gorm connection. It is the
// only writer that touches books.quantity together with sale rows.
type GormSaleRepository struct {
	db *gorm.DB
}

func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{})
}

// CreateSale runs the whole sale flow in one transaction: verify the employee
// and book are active, decrement stock, insert the sale row. The decrement is
// a single guarded UPDATE (quantity >= sold), so the stock check always runs
// against the in-transaction row value: two concurrent sales cannot both pass
// the check on a stale read and oversell.
func (r *GormSaleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var employee employeedomain.Employee
		if err := tx.Select("id").First(&employee, sale.EmployeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEmployeeNotFound
			}
			return err
		}

		var book bookdomain.Book
		if err := tx.Select("id", "quantity").First(&book, sale.BookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBookNotFound
			}
			return err
		}

		result := tx.Model(&bookdomain.Book{}).
			Where("id = ? AND quantity >= ?", sale.BookID, sale.QuantitySold).
			Update("quantity", gorm.Expr("quantity - ?", sale.QuantitySold))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInsufficientStock
		}

		return tx.Create(sale).Error
	})
}

// ReverseSale soft-deletes the sale and puts its quantity back on the book,
// in one transaction. The guarded delete makes the Active -> Deleted
// transition one-way even under concurrent reversals of the same sale.
// Stock is restored through Unscoped so a soft-deleted book gets its copies
// back too.
func (r *GormSaleRepository) ReverseSale(ctx context.Context, saleID uint) (*domain.Sale, error) {
	var reversed domain.Sale
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale domain.Sale
		if err := tx.First(&sale, saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSaleNotFound
			}
			return err
		}

		result := tx.Where("id = ?", sale.ID).Delete(&domain.Sale{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the race to a concurrent reversal
			return domain.ErrSaleNotFound
		}

		if err := tx.Unscoped().Model(&bookdomain.Book{}).
			Where("id = ?", sale.BookID).
			Update("quantity", gorm.Expr("quantity + ?", sale.QuantitySold)).Error; err != nil {
			return err
		}

		reversed = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reversed, nil
}

// AmendSale updates the amendable fields of an active sale. BookID and
// QuantitySold are immutable, so book stock is never recalculated here.
func (r *GormSaleRepository) AmendSale(ctx context.Context, saleID uint, amendment domain.SaleAmendment) (*domain.Sale, error) {
	var amended domain.Sale
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale domain.Sale
		if err := tx.First(&sale, saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSaleNotFound
			}
			return err
		}

		if amendment.EmployeeID != nil {
			var employee employeedomain.Employee
			if err := tx.Select("id").First(&employee, *amendment.EmployeeID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrEmployeeNotFound
				}
				return err
			}
			sale.EmployeeID = *amendment.EmployeeID
		}
		if amendment.SaleDate != nil {
			sale.SaleDate = *amendment.SaleDate
		}
		if amendment.TotalPrice != nil {
			sale.TotalPrice = *amendment.TotalPrice
		}

		if err := tx.Save(&sale).Error; err != nil {
			return err
		}

		amended = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &amended, nil
}

func (r *GormSaleRepository) FindByID(id uint) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindByReceiptID(receiptID string) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.Where("receipt_id = ?", receiptID).First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindAll(limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&sales).Error
	return sales, err
}

func (r *GormSaleRepository) FindByEmployeeID(employeeID uint, limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Where("employee_id = ?", employeeID).
		Limit(limit).Offset(offset).Order("id").Find(&sales).Error
	return sales, err
}

func (r *GormSaleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Sale{}).Count(&count).Error
	return count, err
}
