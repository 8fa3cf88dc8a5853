package domain

import "time"

// Expense is a single spending record. CategoryID must reference a category
// owned by the same user at creation time; deleting the category later leaves
// the reference dangling on purpose (no cascade).
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user"`
	Amount      float64   `json:"amount"`
	CategoryID  string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func (e *Expense) Owner() string { return e.UserID }

type ExpenseRepository interface {
	Save(expense *Expense) error
	FindByUser(userID string) ([]Expense, error)
	FindByID(id string) (*Expense, error)
	Update(expense *Expense) error
	Delete(id string) error
}
