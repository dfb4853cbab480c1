package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	bookdomain "github.com/okoval/bookstore/internal/book/domain"
	employeedomain "github.com/okoval/bookstore/internal/employee/domain"
	"github.com/okoval/bookstore/internal/sale/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&employeedomain.Employee{},
		&bookdomain.Book{},
		&domain.Sale{},
	))

	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, name, email string) *employeedomain.Employee {
	t.Helper()
	employee := &employeedomain.Employee{Name: name, Email: email, Position: "seller"}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func seedBook(t *testing.T, db *gorm.DB, isbn string, quantity int) *bookdomain.Book {
	t.Helper()
	book := &bookdomain.Book{
		ISBN:      isbn,
		Title:     "The Master and Margarita",
		Author:    "Mikhail Bulgakov",
		Genre:     "Classics",
		Year:      1967,
		CostPrice: 8.50,
		SalePrice: 14.99,
		Quantity:  quantity,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func bookQuantity(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var book bookdomain.Book
	require.NoError(t, db.Unscoped().First(&book, id).Error)
	return book.Quantity
}

func newSale(employeeID, bookID uint, quantity int, total float64) *domain.Sale {
	return &domain.Sale{
		ReceiptID:    time.Now().Format("20060102150405.000000000"),
		EmployeeID:   employeeID,
		BookID:       bookID,
		SaleDate:     time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		TotalPrice:   total,
		QuantitySold: quantity,
	}
}

func TestCreateSale_DecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 3, 44.97)
	require.NoError(t, repo.CreateSale(context.Background(), sale))

	assert.NotZero(t, sale.ID)
	assert.Equal(t, 7, bookQuantity(t, db, book.ID))

	stored, err := repo.FindByID(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.QuantitySold)
	assert.Equal(t, 44.97, stored.TotalPrice)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 2)

	err := repo.CreateSale(context.Background(), newSale(employee.ID, book.ID, 5, 74.95))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Failed sale leaves no trace: stock untouched and no ledger row
	assert.Equal(t, 2, bookQuantity(t, db, book.ID))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateSale_ExactStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 4)

	require.NoError(t, repo.CreateSale(context.Background(), newSale(employee.ID, book.ID, 4, 59.96)))
	assert.Equal(t, 0, bookQuantity(t, db, book.ID))
}

func TestCreateSale_LastCopyGoesToOneSale(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 1)

	first := repo.CreateSale(context.Background(), newSale(employee.ID, book.ID, 1, 14.99))
	second := repo.CreateSale(context.Background(), newSale(employee.ID, book.ID, 1, 14.99))

	require.NoError(t, first)
	assert.ErrorIs(t, second, domain.ErrInsufficientStock)
	assert.Equal(t, 0, bookQuantity(t, db, book.ID))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateSale_UnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	err := repo.CreateSale(context.Background(), newSale(999, book.ID, 1, 14.99))
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Equal(t, 10, bookQuantity(t, db, book.ID))
}

func TestCreateSale_UnknownBook(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")

	err := repo.CreateSale(context.Background(), newSale(employee.ID, 999, 1, 14.99))
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestCreateSale_DeletedEmployeeRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)
	require.NoError(t, db.Delete(&employeedomain.Employee{}, employee.ID).Error)

	err := repo.CreateSale(context.Background(), newSale(employee.ID, book.ID, 1, 14.99))
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Equal(t, 10, bookQuantity(t, db, book.ID))
}

func TestCreateSale_DeletedBookRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)
	require.NoError(t, db.Delete(&bookdomain.Book{}, book.ID).Error)

	err := repo.CreateSale(context.Background(), newSale(employee.ID, book.ID, 1, 14.99))
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestReverseSale_RestoresStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 3, 44.97)
	require.NoError(t, repo.CreateSale(context.Background(), sale))
	require.Equal(t, 7, bookQuantity(t, db, book.ID))

	reversed, err := repo.ReverseSale(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, reversed.ID)
	assert.Equal(t, 10, bookQuantity(t, db, book.ID))

	// The reversed sale is gone from active reads but its row survives
	_, err = repo.FindByID(sale.ID)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)

	var raw domain.Sale
	require.NoError(t, db.Unscoped().First(&raw, sale.ID).Error)
	assert.True(t, raw.DeletedAt.Valid)
}

func TestReverseSale_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)

	_, err := repo.ReverseSale(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestReverseSale_AlreadyReversed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 2, 29.98)
	require.NoError(t, repo.CreateSale(context.Background(), sale))
	_, err := repo.ReverseSale(context.Background(), sale.ID)
	require.NoError(t, err)

	// Second reversal must not restore stock twice
	_, err = repo.ReverseSale(context.Background(), sale.ID)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
	assert.Equal(t, 10, bookQuantity(t, db, book.ID))
}

func TestReverseSale_RestoresStockOnDeletedBook(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 4, 59.96)
	require.NoError(t, repo.CreateSale(context.Background(), sale))
	require.NoError(t, db.Delete(&bookdomain.Book{}, book.ID).Error)

	_, err := repo.ReverseSale(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, bookQuantity(t, db, book.ID))
}

func TestReverseThenSellAgain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 5)

	sale := newSale(employee.ID, book.ID, 5, 74.95)
	require.NoError(t, repo.CreateSale(context.Background(), sale))
	require.Equal(t, 0, bookQuantity(t, db, book.ID))

	_, err := repo.ReverseSale(context.Background(), sale.ID)
	require.NoError(t, err)

	// Restored copies are sellable again
	require.NoError(t, repo.CreateSale(context.Background(), newSale(employee.ID, book.ID, 5, 74.95)))
	assert.Equal(t, 0, bookQuantity(t, db, book.ID))
}

func TestAmendSale_UpdatesFieldsOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	other := seedEmployee(t, db, "Boris Ivanov", "boris@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 3, 44.97)
	require.NoError(t, repo.CreateSale(context.Background(), sale))

	newDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	newTotal := 39.99
	amended, err := repo.AmendSale(context.Background(), sale.ID, domain.SaleAmendment{
		EmployeeID: &other.ID,
		SaleDate:   &newDate,
		TotalPrice: &newTotal,
	})
	require.NoError(t, err)

	assert.Equal(t, other.ID, amended.EmployeeID)
	assert.True(t, amended.SaleDate.Equal(newDate))
	assert.Equal(t, 39.99, amended.TotalPrice)

	// Amendment never moves stock and never changes the sold quantity
	assert.Equal(t, 3, amended.QuantitySold)
	assert.Equal(t, book.ID, amended.BookID)
	assert.Equal(t, 7, bookQuantity(t, db, book.ID))
}

func TestAmendSale_PartialAmendment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 2, 29.98)
	require.NoError(t, repo.CreateSale(context.Background(), sale))

	newTotal := 25.00
	amended, err := repo.AmendSale(context.Background(), sale.ID, domain.SaleAmendment{
		TotalPrice: &newTotal,
	})
	require.NoError(t, err)

	assert.Equal(t, 25.00, amended.TotalPrice)
	assert.Equal(t, employee.ID, amended.EmployeeID)
	assert.True(t, amended.SaleDate.Equal(sale.SaleDate))
}

func TestAmendSale_UnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 1, 14.99)
	require.NoError(t, repo.CreateSale(context.Background(), sale))

	bogus := uint(999)
	_, err := repo.AmendSale(context.Background(), sale.ID, domain.SaleAmendment{EmployeeID: &bogus})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	stored, err := repo.FindByID(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, stored.EmployeeID)
}

func TestAmendSale_ReversedSaleNotAmendable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 1, 14.99)
	require.NoError(t, repo.CreateSale(context.Background(), sale))
	_, err := repo.ReverseSale(context.Background(), sale.ID)
	require.NoError(t, err)

	newTotal := 9.99
	_, err = repo.AmendSale(context.Background(), sale.ID, domain.SaleAmendment{TotalPrice: &newTotal})
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestFindByReceiptID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	employee := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	sale := newSale(employee.ID, book.ID, 1, 14.99)
	sale.ReceiptID = "receipt-abc-123"
	require.NoError(t, repo.CreateSale(context.Background(), sale))

	stored, err := repo.FindByReceiptID("receipt-abc-123")
	require.NoError(t, err)
	assert.Equal(t, sale.ID, stored.ID)

	_, err = repo.FindByReceiptID("no-such-receipt")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestFindByEmployeeID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSaleRepository(db)
	anna := seedEmployee(t, db, "Anna Petrova", "anna@bookstore.test")
	boris := seedEmployee(t, db, "Boris Ivanov", "boris@bookstore.test")
	book := seedBook(t, db, "978-0-14-044792-2", 10)

	for i, employeeID := range []uint{anna.ID, anna.ID, boris.ID} {
		sale := newSale(employeeID, book.ID, 1, 14.99)
		sale.ReceiptID = sale.ReceiptID + "-" + string(rune('a'+i))
		require.NoError(t, repo.CreateSale(context.Background(), sale))
	}

	sales, err := repo.FindByEmployeeID(anna.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	sales, err = repo.FindByEmployeeID(boris.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
