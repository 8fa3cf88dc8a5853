package infrastructure

import (
	"github.com/google/uuid"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

// MockCategoryRepository keeps categories in a slice for tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	category.ID = uuid.NewString()
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, c := range m.Categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(id string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i, c := range m.Categories {
		if c.ID == category.ID {
			m.Categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, c := range m.Categories {
		if c.ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) ExistsForUser(id, userID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id && c.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
