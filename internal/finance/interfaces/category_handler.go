package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

type CategoryServiceInterface interface {
	List(userID string) ([]domain.Category, error)
	Create(userID, name string) (*domain.Category, error)
	Update(userID, id, name string) (*domain.Category, error)
	Delete(userID, id string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	categories, err := h.service.List(userID)
	if err != nil {
		log.Println("Error listing categories:", err)
		h.respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.Create(userID, req.Name)
	if err != nil {
		h.respondCategoryError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.Update(userID, r.PathValue("id"), req.Name)
	if err != nil {
		h.respondCategoryError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	if err := h.service.Delete(userID, r.PathValue("id")); err != nil {
		h.respondCategoryError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"msg": "Category removed"})
}

func (h *CategoryHandler) respondCategoryError(w http.ResponseWriter, err error) {
	switch {
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrCategoryNotFound):
		h.respondError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, financeErrors.ErrNotOwner):
		h.respondError(w, http.StatusUnauthorized, "Not authorized")
	default:
		log.Println("Category service error:", err)
		h.respondError(w, http.StatusInternalServerError, "Server error")
	}
}
