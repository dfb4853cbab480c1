package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	bookdomain "github.com/okoval/bookstore/internal/book/domain"
	employeedomain "github.com/okoval/bookstore/internal/employee/domain"
	saledomain "github.com/okoval/bookstore/internal/sale/domain"
	"github.com/okoval/bookstore/internal/sale/repository"
	"github.com/okoval/bookstore/internal/sale/usecase/command"
	"github.com/okoval/bookstore/internal/sale/usecase/query"
)

type testEnv struct {
	db     *gorm.DB
	router *mux.Router
	book   *bookdomain.Book
	seller *employeedomain.Employee
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&employeedomain.Employee{},
		&bookdomain.Book{},
		&saledomain.Sale{},
	))

	seller := &employeedomain.Employee{Name: "Anna Petrova", Email: "anna@bookstore.test"}
	require.NoError(t, db.Create(seller).Error)

	book := &bookdomain.Book{
		ISBN: "978-0-441-17271-9", Title: "Dune", Author: "Frank Herbert",
		Genre: "Science Fiction", Year: 1965, CostPrice: 5.00, SalePrice: 15.00, Quantity: 10,
	}
	require.NoError(t, db.Create(book).Error)

	repo := repository.NewGormSaleRepository(db)
	handler := NewSaleHandler(
		command.NewCreateSaleHandler(repo),
		command.NewReverseSaleHandler(repo),
		command.NewAmendSaleHandler(repo),
		query.NewGetSaleHandler(repo),
		query.NewListSalesHandler(repo),
		repo,
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	return &testEnv{db: db, router: router, book: book, seller: seller}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) bookQuantity(t *testing.T) int {
	t.Helper()
	var book bookdomain.Book
	require.NoError(t, e.db.First(&book, e.book.ID).Error)
	return book.Quantity
}

func decodeSale(t *testing.T, rec *httptest.ResponseRecorder) saledomain.Sale {
	t.Helper()

	var resp struct {
		Success bool            `json:"success"`
		Data    saledomain.Sale `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestCreateSaleEndpoint(t *testing.T) {
	env := setupEnv(t)

	rec := env.do(t, http.MethodPost, "/api/sales", map[string]interface{}{
		"employee_id":   env.seller.ID,
		"book_id":       env.book.ID,
		"quantity_sold": 3,
		"total_price":   45.00,
		"sale_date":     "2025-03-01",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	sale := decodeSale(t, rec)
	assert.NotZero(t, sale.ID)
	assert.NotEmpty(t, sale.ReceiptID)
	assert.Equal(t, 7, env.bookQuantity(t))
}

func TestCreateSaleEndpoint_InsufficientStock(t *testing.T) {
	env := setupEnv(t)

	rec := env.do(t, http.MethodPost, "/api/sales", map[string]interface{}{
		"employee_id":   env.seller.ID,
		"book_id":       env.book.ID,
		"quantity_sold": 50,
		"total_price":   750.00,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 10, env.bookQuantity(t))
}

func TestCreateSaleEndpoint_UnknownBook(t *testing.T) {
	env := setupEnv(t)

	rec := env.do(t, http.MethodPost, "/api/sales", map[string]interface{}{
		"employee_id":   env.seller.ID,
		"book_id":       999,
		"quantity_sold": 1,
		"total_price":   15.00,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSaleEndpoint_BadPayload(t *testing.T) {
	env := setupEnv(t)

	rec := env.do(t, http.MethodPost, "/api/sales", map[string]interface{}{
		"employee_id":   env.seller.ID,
		"book_id":       env.book.ID,
		"quantity_sold": 0,
		"total_price":   15.00,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReverseSaleEndpoint(t *testing.T) {
	env := setupEnv(t)

	created := decodeSale(t, env.do(t, http.MethodPost, "/api/sales", map[string]interface{}{
		"employee_id":   env.seller.ID,
		"book_id":       env.book.ID,
		"quantity_sold": 4,
		"total_price":   60.00,
	}))
	require.Equal(t, 6, env.bookQuantity(t))

	rec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/sales/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, env.bookQuantity(t))

	// Reversed sale no longer resolves
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/sales/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Second reversal must fail without touching stock
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/sales/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 10, env.bookQuantity(t))
}

func TestAmendSaleEndpoint(t *testing.T) {
	env := setupEnv(t)

	created := decodeSale(t, env.do(t, http.MethodPost, "/api/sales", map[string]interface{}{
		"employee_id":   env.seller.ID,
		"book_id":       env.book.ID,
		"quantity_sold": 2,
		"total_price":   30.00,
	}))

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/api/sales/%d", created.ID), map[string]interface{}{
		"total_price": 25.50,
		"sale_date":   "2025-03-15",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	amended := decodeSale(t, rec)
	assert.Equal(t, 25.50, amended.TotalPrice)
	assert.Equal(t, 2, amended.QuantitySold)
	assert.Equal(t, 8, env.bookQuantity(t))
}

func TestGetAndListSalesEndpoints(t *testing.T) {
	env := setupEnv(t)

	created := decodeSale(t, env.do(t, http.MethodPost, "/api/sales", map[string]interface{}{
		"employee_id":   env.seller.ID,
		"book_id":       env.book.ID,
		"quantity_sold": 1,
		"total_price":   15.00,
	}))

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/sales/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/sales", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []saledomain.Sale `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}
