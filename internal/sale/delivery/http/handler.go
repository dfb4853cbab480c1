package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/okoval/bookstore/internal/sale/domain"
	"github.com/okoval/bookstore/internal/sale/usecase/command"
	"github.com/okoval/bookstore/internal/sale/usecase/query"
	"github.com/okoval/bookstore/pkg/logger"
)

var (
	opCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_ledger_operations_total",
			Help: "Total number of ledger operations by result",
		},
		[]string{"operation", "status"},
	)

	opLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookstore_ledger_operation_duration_seconds",
			Help:    "Ledger operation latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	activeSales = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookstore_active_sales",
			Help: "Number of active (non-reversed) sales",
		},
	)
)

// SaleHandler handles HTTP requests for the sales ledger using CQRS pattern
type SaleHandler struct {
	createHandler  *command.CreateSaleHandler
	reverseHandler *command.ReverseSaleHandler
	amendHandler   *command.AmendSaleHandler

	getHandler  *query.GetSaleHandler
	listHandler *query.ListSalesHandler

	repo domain.SaleRepository
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(
	createHandler *command.CreateSaleHandler,
	reverseHandler *command.ReverseSaleHandler,
	amendHandler *command.AmendSaleHandler,
	getHandler *query.GetSaleHandler,
	listHandler *query.ListSalesHandler,
	repo domain.SaleRepository,
) *SaleHandler {
	return &SaleHandler{
		createHandler:  createHandler,
		reverseHandler: reverseHandler,
		amendHandler:   amendHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		repo:           repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateSale handles POST /api/sales
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(opLatency.WithLabelValues("create"))
	defer timer.ObserveDuration()

	var req struct {
		EmployeeID   uint    `json:"employee_id"`
		BookID       uint    `json:"book_id"`
		QuantitySold int     `json:"quantity_sold"`
		TotalPrice   float64 `json:"total_price"`
		SaleDate     string  `json:"sale_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		opCounter.WithLabelValues("create", "error").Inc()
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sale, err := h.createHandler.Handle(r.Context(), command.CreateSaleCommand{
		EmployeeID:   req.EmployeeID,
		BookID:       req.BookID,
		QuantitySold: req.QuantitySold,
		TotalPrice:   req.TotalPrice,
		SaleDate:     req.SaleDate,
	})
	if err != nil {
		opCounter.WithLabelValues("create", "error").Inc()
		logger.Error(r.Context()).Err(err).
			Uint("employee_id", req.EmployeeID).
			Uint("book_id", req.BookID).
			Int("quantity_sold", req.QuantitySold).
			Msg("Failed to create sale")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	opCounter.WithLabelValues("create", "success").Inc()
	h.refreshActiveSales()

	logger.Info(r.Context()).
		Uint("sale_id", sale.ID).
		Str("receipt_id", sale.ReceiptID).
		Uint("book_id", sale.BookID).
		Int("quantity_sold", sale.QuantitySold).
		Msg("Sale recorded")

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sale recorded successfully",
		Data:    sale,
	})
}

// ReverseSale handles DELETE /api/sales/{id}
func (h *SaleHandler) ReverseSale(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(opLatency.WithLabelValues("reverse"))
	defer timer.ObserveDuration()

	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid sale ID",
		})
		return
	}

	sale, err := h.reverseHandler.Handle(r.Context(), command.ReverseSaleCommand{ID: uint(id)})
	if err != nil {
		opCounter.WithLabelValues("reverse", "error").Inc()
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	opCounter.WithLabelValues("reverse", "success").Inc()
	h.refreshActiveSales()

	logger.Info(r.Context()).
		Uint("sale_id", sale.ID).
		Uint("book_id", sale.BookID).
		Int("quantity_restored", sale.QuantitySold).
		Msg("Sale reversed")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sale reversed, stock restored",
		Data:    sale,
	})
}

// AmendSale handles PATCH /api/sales/{id}
func (h *SaleHandler) AmendSale(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(opLatency.WithLabelValues("amend"))
	defer timer.ObserveDuration()

	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid sale ID",
		})
		return
	}

	var req struct {
		EmployeeID *uint    `json:"employee_id"`
		SaleDate   *string  `json:"sale_date"`
		TotalPrice *float64 `json:"total_price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sale, err := h.amendHandler.Handle(r.Context(), command.AmendSaleCommand{
		ID:         uint(id),
		EmployeeID: req.EmployeeID,
		SaleDate:   req.SaleDate,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		opCounter.WithLabelValues("amend", "error").Inc()
		logger.Error(r.Context()).Err(err).Uint64("sale_id", id).Msg("Failed to amend sale")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	opCounter.WithLabelValues("amend", "success").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sale amended successfully",
		Data:    sale,
	})
}

// GetSale handles GET /api/sales/{id}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid sale ID",
		})
		return
	}

	sale, err := h.getHandler.Handle(query.GetSaleQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sale,
	})
}

// ListSales handles GET /api/sales
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	employeeID, _ := strconv.ParseUint(r.URL.Query().Get("employee_id"), 10, 32)

	sales, err := h.listHandler.Handle(query.ListSalesQuery{
		EmployeeID: uint(employeeID),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list sales")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list sales",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sales,
	})
}

// RegisterRoutes registers all sale routes
func (h *SaleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.ListSales).Methods("GET")
	router.HandleFunc("/api/sales", h.CreateSale).Methods("POST")
	router.HandleFunc("/api/sales/{id}", h.GetSale).Methods("GET")
	router.HandleFunc("/api/sales/{id}", h.AmendSale).Methods("PATCH")
	router.HandleFunc("/api/sales/{id}", h.ReverseSale).Methods("DELETE")
}

func (h *SaleHandler) refreshActiveSales() {
	count, err := h.repo.Count()
	if err != nil {
		return
	}
	activeSales.Set(float64(count))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSaleNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
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
