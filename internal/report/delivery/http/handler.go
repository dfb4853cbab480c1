package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/okoval/bookstore/internal/report/domain"
	"github.com/okoval/bookstore/internal/report/usecase/query"
	"github.com/okoval/bookstore/pkg/logger"
)

// ReportHandler handles HTTP requests for sales reports
type ReportHandler struct {
	salesHandler       *query.SalesReportHandler
	leaderboardHandler *query.LeaderboardHandler
	profitHandler      *query.ProfitHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	salesHandler *query.SalesReportHandler,
	leaderboardHandler *query.LeaderboardHandler,
	profitHandler *query.ProfitHandler,
) *ReportHandler {
	return &ReportHandler{
		salesHandler:       salesHandler,
		leaderboardHandler: leaderboardHandler,
		profitHandler:      profitHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SalesReport handles GET /api/reports/sales. Supports from/to/employee_id
// filters and format=csv for a file export.
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := strconv.ParseUint(r.URL.Query().Get("employee_id"), 10, 32)
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	rows, err := h.salesHandler.Handle(query.SalesReportQuery{
		From:       from,
		To:         to,
		EmployeeID: uint(employeeID),
	})
	if err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		h.writeCSV(w, rows, from, to)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    rows,
	})
}

// Leaderboard handles GET /api/reports/leaderboard
func (h *ReportHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.leaderboardHandler.Handle(query.LeaderboardQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	})
	if err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    board,
	})
}

// Profit handles GET /api/reports/profit
func (h *ReportHandler) Profit(w http.ResponseWriter, r *http.Request) {
	result, err := h.profitHandler.Handle(query.ProfitQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	})
	if err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

func (h *ReportHandler) writeCSV(w http.ResponseWriter, rows []domain.SaleRow, from, to string) {
	filename := "sales_all.csv"
	if from != "" || to != "" {
		filename = fmt.Sprintf("sales_%s_to_%s.csv", from, to)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "sale_date", "employee", "book", "quantity_sold", "real_price"}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to write CSV header")
		return
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.SaleDate.Format("2006-01-02"),
			row.Employee,
			row.Book,
			strconv.Itoa(row.QuantitySold),
			strconv.FormatFloat(row.RealPrice, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to write CSV row")
			return
		}
	}
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/sales", h.SalesReport).Methods("GET")
	router.HandleFunc("/api/reports/leaderboard", h.Leaderboard).Methods("GET")
	router.HandleFunc("/api/reports/profit", h.Profit).Methods("GET")
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoData):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
