package application

import (
	"strings"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(userID string) ([]domain.Category, error) {
	return s.repo.FindByUser(userID)
}

func (s *CategoryService) Create(userID, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, financeErrors.NewValidationError("Name is required")
	}

	category := &domain.Category{
		UserID: userID,
		Name:   name,
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(userID, id, name string) (*domain.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(category, userID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, financeErrors.NewValidationError("Name is required")
	}

	category.Name = name
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category only. Expenses referencing it keep their
// category id and are left untouched.
func (s *CategoryService) Delete(userID, id string) error {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(category, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *CategoryService) DoesUserCategoryExist(categoryID, userID string) (bool, error) {
	return s.repo.ExistsForUser(categoryID, userID)
}
