package users

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that no user matches the requested ID.
var ErrNotFound = errors.New("user not found")

// DuplicateError indicates a unique constraint hit on a user attribute.
// Field names the conflicting attribute when it is known.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return "user already exists"
	}
	return fmt.Sprintf("user with this %s already exists", e.Field)
}
