package infrastructure

import (
	"github.com/google/uuid"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

// MockExpenseRepository keeps expenses in a slice for tests.
type MockExpenseRepository struct {
	Expenses []domain.Expense
	Err      error
}

func (m *MockExpenseRepository) Save(expense *domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	expense.ID = uuid.NewString()
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var expenses []domain.Expense
	for _, e := range m.Expenses {
		if e.UserID == userID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) FindByID(id string) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Expenses {
		if e.ID == id {
			expense := e
			return &expense, nil
		}
	}
	return nil, financeErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(expense *domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	for i, e := range m.Expenses {
		if e.ID == expense.ID {
			m.Expenses[i] = *expense
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Delete(id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i, e := range m.Expenses {
		if e.ID == id {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrExpenseNotFound
}
