package domain

import "github.com/dipesh2508/expense-tracker-backend/internal/finance/errors"

// Owned is implemented by every entity that records its owning user. The
// owner id is denormalized onto the entity at creation time and never
// changes.
type Owned interface {
	Owner() string
}

// Authorize allows the request only when the requester owns the entity.
// Callers must confirm the entity exists before calling this, so a missing
// entity surfaces as not-found rather than not-authorized.
func Authorize(entity Owned, requesterID string) error {
	if entity.Owner() != requesterID {
		return errors.ErrNotOwner
	}
	return nil
}
