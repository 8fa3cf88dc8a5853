package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(expense *domain.Expense) error {
	expense.ID = uuid.NewString()
	query := `
		INSERT INTO expenses (id, user_id, amount, category_id, date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query, expense.ID, expense.UserID, expense.Amount, expense.CategoryID, expense.Date, expense.Description)
	if err != nil {
		return fmt.Errorf("could not create expense: %v", err)
	}
	return nil
}

func (r *ExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	query := `
		SELECT id, user_id, amount, category_id, date, description
		FROM expenses
		WHERE user_id = $1
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.CategoryID, &expense.Date, &expense.Description); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) FindByID(id string) (*domain.Expense, error) {
	query := `
		SELECT id, user_id, amount, category_id, date, description
		FROM expenses
		WHERE id = $1
	`

	var expense domain.Expense
	err := r.db.QueryRow(query, id).Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.CategoryID, &expense.Date, &expense.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("could not find expense: %v", err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) Update(expense *domain.Expense) error {
	query := `
		UPDATE expenses
		SET amount = $2, category_id = $3, date = $4, description = $5
		WHERE id = $1
	`
	_, err := r.db.Exec(query, expense.ID, expense.Amount, expense.CategoryID, expense.Date, expense.Description)
	if err != nil {
		return fmt.Errorf("could not update expense: %v", err)
	}
	return nil
}

func (r *ExpenseRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("could not delete expense: %v", err)
	}
	return nil
}
