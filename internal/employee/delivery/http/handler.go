package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/okoval/bookstore/internal/employee/domain"
	"github.com/okoval/bookstore/internal/employee/usecase/command"
	"github.com/okoval/bookstore/internal/employee/usecase/query"
	"github.com/okoval/bookstore/pkg/logger"
)

// EmployeeHandler handles HTTP requests for employees using CQRS pattern
type EmployeeHandler struct {
	createHandler *command.CreateEmployeeHandler
	updateHandler *command.UpdateEmployeeHandler
	deleteHandler *command.DeleteEmployeeHandler

	getHandler  *query.GetEmployeeHandler
	listHandler *query.ListEmployeesHandler
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(
	createHandler *command.CreateEmployeeHandler,
	updateHandler *command.UpdateEmployeeHandler,
	deleteHandler *command.DeleteEmployeeHandler,
	getHandler *query.GetEmployeeHandler,
	listHandler *query.ListEmployeesHandler,
) *EmployeeHandler {
	return &EmployeeHandler{
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

// CreateEmployee handles POST /api/employees
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Position string `json:"position"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	employee, err := h.createHandler.Handle(command.CreateEmployeeCommand{
		Name:     req.Name,
		Position: req.Position,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create employee")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Employee created successfully",
		Data:    employee,
	})
}

// GetEmployee handles GET /api/employees/{id}
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid employee ID",
		})
		return
	}

	employee, err := h.getHandler.Handle(query.GetEmployeeQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    employee,
	})
}

// ListEmployees handles GET /api/employees
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	employees, err := h.listHandler.Handle(query.ListEmployeesQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list employees")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list employees",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    employees,
	})
}

// UpdateEmployee handles PATCH /api/employees/{id}
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid employee ID",
		})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Position string `json:"position"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	employee, err := h.updateHandler.Handle(command.UpdateEmployeeCommand{
		ID:       uint(id),
		Name:     req.Name,
		Position: req.Position,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint64("employee_id", id).Msg("Failed to update employee")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Employee updated successfully",
		Data:    employee,
	})
}

// DeleteEmployee handles DELETE /api/employees/{id}
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid employee ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteEmployeeCommand{ID: uint(id)}); err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Employee deleted successfully",
	})
}

// RegisterRoutes registers all employee routes
func (h *EmployeeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/employees", h.ListEmployees).Methods("GET")
	router.HandleFunc("/api/employees", h.CreateEmployee).Methods("POST")
	router.HandleFunc("/api/employees/{id}", h.GetEmployee).Methods("GET")
	router.HandleFunc("/api/employees/{id}", h.UpdateEmployee).Methods("PATCH")
	router.HandleFunc("/api/employees/{id}", h.DeleteEmployee).Methods("DELETE")
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNameRequired), errors.Is(err, domain.ErrInvalidEmail):
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
