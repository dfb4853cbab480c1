package repository

import (
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/report/domain"
)

// GormReportRepository runs the aggregate queries directly over the ledger
// tables. Reads only; the ledger repository owns all writes.
type GormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// salesBase builds the joined sales query scoped to active sales. Raw table
// joins bypass the gorm soft-delete scope, so deleted_at is filtered by hand.
func (r *GormReportRepository) salesBase(period domain.Period) *gorm.DB {
	q := r.db.Table("sales s").
		Joins("JOIN employees e ON e.id = s.employee_id").
		Joins("JOIN books b ON b.id = s.book_id").
		Where("s.deleted_at IS NULL")

	if !period.From.IsZero() {
		q = q.Where("s.sale_date >= ?", period.From)
	}
	if !period.To.IsZero() {
		q = q.Where("s.sale_date <= ?", period.To)
	}
	return q
}

func (r *GormReportRepository) Sales(period domain.Period, employeeID uint) ([]domain.SaleRow, error) {
	q := r.salesBase(period).
		Select("s.id, s.sale_date, e.name AS employee, b.title AS book, s.quantity_sold, s.total_price AS real_price").
		Order("s.sale_date, s.id")

	if employeeID != 0 {
		q = q.Where("s.employee_id = ?", employeeID)
	}

	var rows []domain.SaleRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *GormReportRepository) MostSoldBook(period domain.Period) (*domain.BookTotal, error) {
	var row domain.BookTotal
	result := r.salesBase(period).
		Select("b.id AS book_id, b.title, SUM(s.quantity_sold) AS quantity").
		Group("b.id, b.title").
		Order("quantity DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoData
	}
	return &row, nil
}

func (r *GormReportRepository) BestSellerByProfit(period domain.Period) (*domain.EmployeeProfit, error) {
	var row domain.EmployeeProfit
	result := r.salesBase(period).
		Select("e.id AS employee_id, e.name, COALESCE(SUM(s.total_price - b.cost_price * s.quantity_sold), 0) AS profit").
		Group("e.id, e.name").
		Order("profit DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoData
	}
	return &row, nil
}

func (r *GormReportRepository) ProfitByPeriod(period domain.Period) (float64, error) {
	var row struct {
		Profit float64
	}
	err := r.salesBase(period).
		Select("COALESCE(SUM(s.total_price - b.cost_price * s.quantity_sold), 0) AS profit").
		Scan(&row).Error
	return row.Profit, err
}

func (r *GormReportRepository) TopAuthor(period domain.Period) (*domain.AuthorTotal, error) {
	var row domain.AuthorTotal
	result := r.salesBase(period).
		Select("b.author, SUM(s.quantity_sold) AS quantity").
		Group("b.author").
		Order("quantity DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoData
	}
	return &row, nil
}

func (r *GormReportRepository) TopGenre(period domain.Period) (*domain.GenreTotal, error) {
	var row domain.GenreTotal
	result := r.salesBase(period).
		Select("b.genre, SUM(s.quantity_sold) AS quantity").
		Group("b.genre").
		Order("quantity DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoData
	}
	return &row, nil
}
