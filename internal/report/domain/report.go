package domain

import (
	"errors"
	"time"
)

// SaleRow is one line of the sales report: a sale joined with the employee
// who made it and the book sold
type SaleRow struct {
	ID           uint      `json:"id"`
	SaleDate     time.Time `json:"sale_date"`
	Employee     string    `json:"employee"`
	Book         string    `json:"book"`
	QuantitySold int       `json:"quantity_sold"`
	RealPrice    float64   `json:"real_price"`
}

// BookTotal is a book ranked by copies sold
type BookTotal struct {
	BookID   uint   `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// EmployeeProfit is an employee ranked by profit brought in
type EmployeeProfit struct {
	EmployeeID uint    `json:"employee_id"`
	Name       string  `json:"name"`
	Profit     float64 `json:"profit"`
}

// AuthorTotal is an author ranked by copies sold
type AuthorTotal struct {
	Author   string `json:"author"`
	Quantity int    `json:"quantity"`
}

// GenreTotal is a genre ranked by copies sold
type GenreTotal struct {
	Genre    string `json:"genre"`
	Quantity int    `json:"quantity"`
}

// Period is an inclusive date range. A zero From/To leaves that edge open.
type Period struct {
	From time.Time
	To   time.Time
}

var (
	// ErrInvalidPeriod is returned when a report date does not parse or the
	// range is inverted
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrNoData is returned by ranking reports when no sales fall in the
	// period
	ErrNoData = errors.New("no sales in period")
)

// ReportRepository defines the read-only aggregate queries over the ledger.
// All queries see active rows only; reversed sales never count.
type ReportRepository interface {
	Sales(period Period, employeeID uint) ([]SaleRow, error)
	MostSoldBook(period Period) (*BookTotal, error)
	BestSellerByProfit(period Period) (*EmployeeProfit, error)
	ProfitByPeriod(period Period) (float64, error)
	TopAuthor(period Period) (*AuthorTotal, error)
	TopGenre(period Period) (*GenreTotal, error)
}
