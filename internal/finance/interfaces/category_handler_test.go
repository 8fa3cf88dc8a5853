package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

func authedRequest(method, target, body, userID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(context.WithValue(req.Context(), "userID", userID))
}

func TestGetCategories_Success(t *testing.T) {
	mockService := &MockCategoryService{
		categories: []domain.Category{
			{ID: "cat-1", UserID: "user-a", Name: "Food"},
			{ID: "cat-2", UserID: "user-a", Name: "Rent"},
		},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.GetCategories(w, authedRequest(http.MethodGet, "/api/categories", "", "user-a"))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var categories []domain.Category
	require.NoError(t, json.NewDecoder(res.Body).Decode(&categories))
	assert.Len(t, categories, 2)
}

func TestGetCategories_EmptyListNotNull(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.GetCategories(w, authedRequest(http.MethodGet, "/api/categories", "", "user-a"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestGetCategories_NoIdentity(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.GetCategories(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCategory_Success(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/categories", `{"name":"Food"}`, "user-a"))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var category domain.Category
	require.NoError(t, json.NewDecoder(res.Body).Decode(&category))
	assert.Equal(t, "Food", category.Name)
	assert.Equal(t, "user-a", category.UserID)
}

func TestCreateCategory_ValidationError(t *testing.T) {
	mockService := &MockCategoryService{err: financeErrors.NewValidationError("Name is required")}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/categories", `{"name":"  "}`, "user-a"))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Name is required", response["msg"])
}

func TestUpdateCategory_NotFound(t *testing.T) {
	mockService := &MockCategoryService{err: financeErrors.ErrCategoryNotFound}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authedRequest(http.MethodPut, "/api/categories/missing", `{"name":"Food"}`, "user-a")
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Category not found", response["msg"])
}

func TestUpdateCategory_NotOwner(t *testing.T) {
	mockService := &MockCategoryService{err: financeErrors.ErrNotOwner}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authedRequest(http.MethodPut, "/api/categories/cat-1", `{"name":"Food"}`, "user-b")
	req.SetPathValue("id", "cat-1")
	w := httptest.NewRecorder()
	handler.UpdateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var response map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Not authorized", response["msg"])
}

func TestDeleteCategory_Success(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authedRequest(http.MethodDelete, "/api/categories/cat-1", "", "user-a")
	req.SetPathValue("id", "cat-1")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Category removed", response["msg"])
}

func TestDeleteCategory_StorageError(t *testing.T) {
	mockService := &MockCategoryService{err: errors.New("connection refused")}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authedRequest(http.MethodDelete, "/api/categories/cat-1", "", "user-a")
	req.SetPathValue("id", "cat-1")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	// Internal details never reach the client.
	var response map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Server error", response["msg"])
}
