package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/application"
	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

type ExpenseServiceInterface interface {
	List(userID string) ([]domain.Expense, error)
	Create(expense *domain.Expense) error
	Update(userID, id string, update application.ExpenseUpdate) (*domain.Expense, error)
	Delete(userID, id string) error
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ExpenseHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type expenseRequest struct {
	Amount      float64    `json:"amount"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

func (h *ExpenseHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	expenses, err := h.service.List(userID)
	if err != nil {
		log.Println("Error listing expenses:", err)
		h.respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	h.respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense := &domain.Expense{
		UserID: userID,
		Amount: req.Amount,
	}
	if req.Category != nil {
		expense.CategoryID = *req.Category
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}

	if err := h.service.Create(expense); err != nil {
		h.respondExpenseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := application.ExpenseUpdate{
		Amount:      req.Amount,
		CategoryID:  req.Category,
		Date:        req.Date,
		Description: req.Description,
	}

	expense, err := h.service.Update(userID, r.PathValue("id"), update)
	if err != nil {
		h.respondExpenseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	if err := h.service.Delete(userID, r.PathValue("id")); err != nil {
		h.respondExpenseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"msg": "Expense removed"})
}

func (h *ExpenseHandler) respondExpenseError(w http.ResponseWriter, err error) {
	switch {
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrInvalidCategory):
		h.respondError(w, http.StatusBadRequest, "Invalid category")
	case errors.Is(err, financeErrors.ErrExpenseNotFound):
		h.respondError(w, http.StatusNotFound, "Expense not found")
	case errors.Is(err, financeErrors.ErrNotOwner):
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
	default:
		log.Println("Expense service error:", err)
		h.respondError(w, http.StatusInternalServerError, "Server error")
	}
}
