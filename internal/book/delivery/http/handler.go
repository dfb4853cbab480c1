package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/okoval/bookstore/internal/book/domain"
	"github.com/okoval/bookstore/internal/book/usecase/command"
	"github.com/okoval/bookstore/internal/book/usecase/query"
	"github.com/okoval/bookstore/pkg/logger"
)

// BookHandler handles HTTP requests for the book catalog using CQRS pattern
type BookHandler struct {
	createHandler *command.CreateBookHandler
	updateHandler *command.UpdateBookHandler
	deleteHandler *command.DeleteBookHandler

	getHandler  *query.GetBookHandler
	listHandler *query.ListBooksHandler
}

// NewBookHandler creates a new book handler
func NewBookHandler(
	createHandler *command.CreateBookHandler,
	updateHandler *command.UpdateBookHandler,
	deleteHandler *command.DeleteBookHandler,
	getHandler *query.GetBookHandler,
	listHandler *query.ListBooksHandler,
) *BookHandler {
	return &BookHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateBook handles POST /api/books
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ISBN      string  `json:"isbn"`
		Title     string  `json:"title"`
		Author    string  `json:"author"`
		Genre     string  `json:"genre"`
		Year      int     `json:"year"`
		CostPrice float64 `json:"cost_price"`
		SalePrice float64 `json:"sale_price"`
		Quantity  int     `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	book, err := h.createHandler.Handle(command.CreateBookCommand{
		ISBN:      req.ISBN,
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Year:      req.Year,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create book")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Book created successfully",
		Data:    book,
	})
}

// GetBook handles GET /api/books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid book ID",
		})
		return
	}

	book, err := h.getHandler.Handle(query.GetBookQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    book,
	})
}

// ListBooks handles GET /api/books
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	genre := r.URL.Query().Get("genre")

	books, err := h.listHandler.Handle(query.ListBooksQuery{
		Genre:  genre,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list books")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list books",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    books,
	})
}

// UpdateBook handles PATCH /api/books/{id}
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid book ID",
		})
		return
	}

	var req struct {
		ISBN      string   `json:"isbn"`
		Title     string   `json:"title"`
		Author    string   `json:"author"`
		Genre     string   `json:"genre"`
		Year      *int     `json:"year"`
		CostPrice *float64 `json:"cost_price"`
		SalePrice *float64 `json:"sale_price"`
		Quantity  *int     `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	book, err := h.updateHandler.Handle(command.UpdateBookCommand{
		ID:        uint(id),
		ISBN:      req.ISBN,
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Year:      req.Year,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint64("book_id", id).Msg("Failed to update book")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Book updated successfully",
		Data:    book,
	})
}

// DeleteBook handles DELETE /api/books/{id}
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid book ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteBookCommand{ID: uint(id)}); err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Book deleted successfully",
	})
}

// RegisterRoutes registers all book routes
func (h *BookHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/books", h.ListBooks).Methods("GET")
	router.HandleFunc("/api/books", h.CreateBook).Methods("POST")
	router.HandleFunc("/api/books/{id}", h.GetBook).Methods("GET")
	router.HandleFunc("/api/books/{id}", h.UpdateBook).Methods("PATCH")
	router.HandleFunc("/api/books/{id}", h.DeleteBook).Methods("DELETE")
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrISBNTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidISBN),
		errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrAuthorRequired),
		errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidQuantity):
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
