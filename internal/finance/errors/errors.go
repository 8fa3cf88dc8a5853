package errors

import "errors"

// ValidationError marks malformed or missing input on a request.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var (
	// Lookup failures, returned before any ownership check. The
	// lookup-then-authorize ordering is load-bearing.
	ErrCategoryNotFound = errors.New("category not found")
	ErrExpenseNotFound  = errors.New("expense not found")

	// ErrNotOwner is returned when the requester is authenticated but the
	// entity belongs to a different user.
	ErrNotOwner = errors.New("not authorized")

	// ErrInvalidCategory is returned when an expense cites a category id
	// that does not exist or belongs to another user. A foreign user's
	// category is never exposed as existing, so this is a reference
	// failure, not an authorization one.
	ErrInvalidCategory = errors.New("invalid category")
)
