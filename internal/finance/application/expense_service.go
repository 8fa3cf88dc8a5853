package application

import (
	"time"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

type CategoryServiceInterface interface {
	DoesUserCategoryExist(categoryID, userID string) (bool, error)
}

// ExpenseUpdate carries the fields of a partial update. Amount is required
// on every update; nil pointer fields are left unchanged.
type ExpenseUpdate struct {
	Amount      float64
	CategoryID  *string
	Date        *time.Time
	Description *string
}

type ExpenseService struct {
	repo            domain.ExpenseRepository
	categoryService CategoryServiceInterface
}

func NewExpenseService(repo domain.ExpenseRepository, categoryService CategoryServiceInterface) *ExpenseService {
	return &ExpenseService{repo: repo, categoryService: categoryService}
}

func (s *ExpenseService) List(userID string) ([]domain.Expense, error) {
	return s.repo.FindByUser(userID)
}

func (s *ExpenseService) Create(expense *domain.Expense) error {
	if expense.Amount == 0 {
		return financeErrors.NewValidationError("Amount is required")
	}
	if expense.CategoryID == "" {
		return financeErrors.NewValidationError("Category is required")
	}
	if err := s.checkCategoryReference(expense.CategoryID, expense.UserID); err != nil {
		return err
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	return s.repo.Save(expense)
}

func (s *ExpenseService) Update(userID, id string, update ExpenseUpdate) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(expense, userID); err != nil {
		return nil, err
	}

	if update.Amount == 0 {
		return nil, financeErrors.NewValidationError("Amount is required")
	}
	if update.CategoryID != nil {
		if err := s.checkCategoryReference(*update.CategoryID, userID); err != nil {
			return nil, err
		}
		expense.CategoryID = *update.CategoryID
	}

	expense.Amount = update.Amount
	if update.Date != nil {
		expense.Date = *update.Date
	}
	if update.Description != nil {
		expense.Description = *update.Description
	}

	if err := s.repo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Delete(userID, id string) error {
	expense, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(expense, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *ExpenseService) checkCategoryReference(categoryID, userID string) error {
	exists, err := s.categoryService.DoesUserCategoryExist(categoryID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}
	return nil
}
