package interfaces

import (
	"time"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/application"
	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
)

type MockExpenseService struct {
	expenses []domain.Expense
	err      error
}

func (m *MockExpenseService) List(userID string) ([]domain.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.expenses, nil
}

func (m *MockExpenseService) Create(expense *domain.Expense) error {
	if m.err != nil {
		return m.err
	}
	expense.ID = "exp-1"
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	m.expenses = append(m.expenses, *expense)
	return nil
}

func (m *MockExpenseService) Update(userID, id string, update application.ExpenseUpdate) (*domain.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	expense := &domain.Expense{ID: id, UserID: userID, Amount: update.Amount}
	if update.CategoryID != nil {
		expense.CategoryID = *update.CategoryID
	}
	if update.Date != nil {
		expense.Date = *update.Date
	}
	if update.Description != nil {
		expense.Description = *update.Description
	}
	return expense, nil
}

func (m *MockExpenseService) Delete(userID, id string) error {
	return m.err
}
