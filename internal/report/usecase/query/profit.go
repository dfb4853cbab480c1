package query

import (
	"github.com/okoval/bookstore/internal/report/domain"
)

// ProfitQuery asks for the total profit over a period
type ProfitQuery struct {
	From string
	To   string
}

// ProfitResult is the total profit for the requested period
type ProfitResult struct {
	From   string  `json:"from,omitempty"`
	To     string  `json:"to,omitempty"`
	Profit float64 `json:"profit"`
}

// ProfitHandler handles the profit query
type ProfitHandler struct {
	repo domain.ReportRepository
}

// NewProfitHandler creates a new profit handler
func NewProfitHandler(repo domain.ReportRepository) *ProfitHandler {
	return &ProfitHandler{repo: repo}
}

// Handle executes the profit query
func (h *ProfitHandler) Handle(query ProfitQuery) (*ProfitResult, error) {
	period, err := ParsePeriod(query.From, query.To)
	if err != nil {
		return nil, err
	}

	profit, err := h.repo.ProfitByPeriod(period)
	if err != nil {
		return nil, err
	}

	return &ProfitResult{
		From:   query.From,
		To:     query.To,
		Profit: profit,
	}, nil
}
