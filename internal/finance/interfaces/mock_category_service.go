package interfaces

import (
	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	err        error
}

func (m *MockCategoryService) List(userID string) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) Create(userID, name string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	category := domain.Category{ID: "cat-1", UserID: userID, Name: name}
	m.categories = append(m.categories, category)
	return &category, nil
}

func (m *MockCategoryService) Update(userID, id, name string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{ID: id, UserID: userID, Name: name}, nil
}

func (m *MockCategoryService) Delete(userID, id string) error {
	return m.err
}
