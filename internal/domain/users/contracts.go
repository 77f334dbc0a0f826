package users

import (
	"context"
)

// UserService defines operations for managing users.
type UserService interface {
	// Create registers a single user after checking username and email uniqueness.
	// It returns the created User and any error encountered during the creation process.
	Create(ctx context.Context, newUser *NewUser) (*User, error)

	// CreateBatch registers several users in one transaction after checking
	// uniqueness for every payload.
	// It returns the created Users and any error encountered during the creation process.
	CreateBatch(ctx context.Context, newUsers []*NewUser) ([]*User, error)

	// GetByID retrieves a user by its unique ID.
	// It returns the User and any error encountered during the retrieval process.
	GetByID(ctx context.Context, id int64) (*User, error)

	// ListByIDs retrieves the users matching the given IDs. IDs without a
	// matching user are skipped silently.
	ListByIDs(ctx context.Context, ids []int64) ([]*User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]*User, error)

	// Update applies a partial update to a user, hashing the password when one is set.
	// It returns the updated User and any error encountered during the update process.
	Update(ctx context.Context, id int64, update *UserUpdate) (*User, error)

	// Delete removes a user by its ID.
	// It returns the removed User and any error encountered during the deletion process.
	Delete(ctx context.Context, id int64) (*User, error)
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	CreateBatch(ctx context.Context, users []*User) ([]*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*User, error)
	List(ctx context.Context) ([]*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateByID(ctx context.Context, id int64, patch *UserPatch) (*User, error)
	DeleteByID(ctx context.Context, id int64) (*User, error)
}
