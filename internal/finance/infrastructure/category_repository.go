package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dipesh2508/expense-tracker-backend/internal/finance/domain"
	financeErrors "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	category.ID = uuid.NewString()
	query := `
		INSERT INTO categories (id, user_id, name)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, category.ID, category.UserID, category.Name)
	if err != nil {
		return fmt.Errorf("could not create category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	rows, err := r.db.Query("SELECT id, user_id, name FROM categories WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(id string) (*domain.Category, error) {
	query := "SELECT id, user_id, name FROM categories WHERE id = $1"

	var category domain.Category
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.UserID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("could not find category: %v", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category *domain.Category) error {
	_, err := r.db.Exec("UPDATE categories SET name = $2 WHERE id = $1", category.ID, category.Name)
	if err != nil {
		return fmt.Errorf("could not update category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("could not delete category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) ExistsForUser(id, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)"
	err := r.db.QueryRow(query, id, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
