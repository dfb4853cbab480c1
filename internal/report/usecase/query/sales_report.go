package query

import (
	"time"

	"github.com/okoval/bookstore/internal/report/domain"
)

// SalesReportQuery represents the query for the tabular sales report.
// From/To are inclusive YYYY-MM-DD dates; empty strings leave the range open.
// A non-zero EmployeeID narrows the report to one employee.
type SalesReportQuery struct {
	From       string
	To         string
	EmployeeID uint
}

// SalesReportHandler handles the sales report query
type SalesReportHandler struct {
	repo domain.ReportRepository
}

// NewSalesReportHandler creates a new sales report handler
func NewSalesReportHandler(repo domain.ReportRepository) *SalesReportHandler {
	return &SalesReportHandler{repo: repo}
}

// Handle executes the sales report query
func (h *SalesReportHandler) Handle(query SalesReportQuery) ([]domain.SaleRow, error) {
	period, err := ParsePeriod(query.From, query.To)
	if err != nil {
		return nil, err
	}
	return h.repo.Sales(period, query.EmployeeID)
}

// ParsePeriod parses an inclusive date range. Both edges are optional.
func ParsePeriod(from, to string) (domain.Period, error) {
	var period domain.Period

	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return domain.Period{}, domain.ErrInvalidPeriod
		}
		period.From = parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return domain.Period{}, domain.ErrInvalidPeriod
		}
		period.To = parsed
	}
	if !period.From.IsZero() && !period.To.IsZero() && period.To.Before(period.From) {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	return period, nil
}
