package domain

// Category is a user-defined expense label. Names are not unique per user,
// duplicates are allowed.
type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user"`
	Name   string `json:"name"`
}

func (c *Category) Owner() string { return c.UserID }

type CategoryRepository interface {
	Save(category *Category) error
	FindByUser(userID string) ([]Category, error)
	FindByID(id string) (*Category, error)
	Update(category *Category) error
	Delete(id string) error
	ExistsForUser(id, userID string) (bool, error)
}
