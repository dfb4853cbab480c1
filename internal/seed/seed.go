package seed

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookdomain "github.com/okoval/bookstore/internal/book/domain"
	employeedomain "github.com/okoval/bookstore/internal/employee/domain"
	saledomain "github.com/okoval/bookstore/internal/sale/domain"
	salerepo "github.com/okoval/bookstore/internal/sale/repository"
	"github.com/okoval/bookstore/pkg/logger"
)

// Migrate creates or updates the three ledger tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employeedomain.Employee{},
		&bookdomain.Book{},
		&saledomain.Sale{},
	)
}

func demoBooks() []bookdomain.Book {
	return []bookdomain.Book{
		{ISBN: "978-617-12-0001-1", Title: "Kobzar", Author: "Taras Shevchenko", Genre: "Classics", Year: 2015, CostPrice: 120, SalePrice: 220, Quantity: 10},
		{ISBN: "978-617-12-0002-8", Title: "The Forest Song", Author: "Lesya Ukrainka", Genre: "Drama", Year: 2018, CostPrice: 90, SalePrice: 180, Quantity: 8},
		{ISBN: "978-617-12-0003-5", Title: "Tiger Trappers", Author: "Ivan Bahrianyi", Genre: "Novel", Year: 2019, CostPrice: 110, SalePrice: 210, Quantity: 6},
		{ISBN: "978-617-12-0004-2", Title: "1984", Author: "George Orwell", Genre: "Dystopia", Year: 2020, CostPrice: 140, SalePrice: 260, Quantity: 7},
		{ISBN: "978-617-12-0005-9", Title: "The Little Prince", Author: "Antoine de Saint-Exupery", Genre: "Fable", Year: 2017, CostPrice: 80, SalePrice: 150, Quantity: 12},
		{ISBN: "978-617-12-0006-6", Title: "Harry Potter and the Philosopher's Stone", Author: "J. K. Rowling", Genre: "Fantasy", Year: 2021, CostPrice: 200, SalePrice: 350, Quantity: 9},
		{ISBN: "978-617-12-0007-3", Title: "The City", Author: "Valerian Pidmohylnyi", Genre: "Novel", Year: 2016, CostPrice: 100, SalePrice: 190, Quantity: 5},
		{ISBN: "978-617-12-0008-0", Title: "Garden of Gethsemane", Author: "Ivan Bahrianyi", Genre: "Novel", Year: 2022, CostPrice: 130, SalePrice: 240, Quantity: 4},
		{ISBN: "978-617-12-0009-7", Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Novel", Year: 2014, CostPrice: 95, SalePrice: 175, Quantity: 11},
		{ISBN: "978-617-12-0010-3", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Year: 2023, CostPrice: 220, SalePrice: 390, Quantity: 3},
	}
}

// Demo fills empty tables with demo data. Sales go through the ledger
// repository, so the stock invariant holds from the very first row. Tables
// that already hold rows are left alone.
func Demo(db *gorm.DB) error {
	var employeeCount, bookCount, saleCount int64
	if err := db.Model(&employeedomain.Employee{}).Count(&employeeCount).Error; err != nil {
		return err
	}
	if err := db.Model(&bookdomain.Book{}).Count(&bookCount).Error; err != nil {
		return err
	}
	if err := db.Model(&saledomain.Sale{}).Count(&saleCount).Error; err != nil {
		return err
	}

	if employeeCount == 0 {
		employees := []employeedomain.Employee{
			{Name: "Ivan Petrenko", Position: "Sales clerk", Phone: "+380501112233", Email: "ivan.petrenko@example.com"},
			{Name: "Olena Koval", Position: "Sales clerk", Phone: "+380631234567", Email: "olena.koval@example.com"},
			{Name: "Andrii Melnyk", Position: "Senior clerk", Phone: "+380671110022", Email: "andrii.melnyk@example.com"},
			{Name: "Maria Tkachenko", Position: "Cashier", Phone: "+380951234111", Email: "maria.tkachenko@example.com"},
		}
		if err := db.Create(&employees).Error; err != nil {
			return err
		}
		logger.Logger.Info().Int("count", len(employees)).Msg("Seeded demo employees")
	}

	if bookCount == 0 {
		books := demoBooks()
		if err := db.Create(&books).Error; err != nil {
			return err
		}
		logger.Logger.Info().Int("count", len(books)).Msg("Seeded demo books")
	}

	if saleCount == 0 {
		var employees []employeedomain.Employee
		if err := db.Order("id").Find(&employees).Error; err != nil {
			return err
		}
		var books []bookdomain.Book
		if err := db.Order("id").Find(&books).Error; err != nil {
			return err
		}
		if len(employees) == 0 || len(books) == 0 {
			return nil
		}

		ledger := salerepo.NewGormSaleRepository(db)
		today := time.Now()
		seeded := 0

		for i := 0; i < 10; i++ {
			employee := employees[rand.Intn(len(employees))]
			book := books[rand.Intn(len(books))]
			qty := rand.Intn(2) + 1
			saleDate := today.AddDate(0, 0, -rand.Intn(31))

			sale := &saledomain.Sale{
				ReceiptID:    uuid.New().String(),
				EmployeeID:   employee.ID,
				BookID:       book.ID,
				SaleDate:     saleDate,
				TotalPrice:   book.SalePrice * float64(qty),
				QuantitySold: qty,
			}
			err := ledger.CreateSale(context.Background(), sale)
			if err == saledomain.ErrInsufficientStock {
				continue
			}
			if err != nil {
				return err
			}
			seeded++
		}
		logger.Logger.Info().Int("count", seeded).Msg("Seeded demo sales")
	}

	return nil
}
