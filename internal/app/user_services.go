package app

import (
	"context"
	"fmt"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// userService implements the UserService interface for managing user accounts
type userService struct {
	userRepo users.UserRepository
	hasher   auth.PasswordHasher
	logger   logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo users.UserRepository, hasher auth.PasswordHasher, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Create registers a single user after checking username and email uniqueness.
// It returns the created User and any error encountered during the creation process.
func (s *userService) Create(ctx context.Context, newUser *users.NewUser) (*users.User, error) {
	if err := newUser.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureLoginFree(ctx, newUser.Username, newUser.Email); err != nil {
		return nil, err
	}

	user, err := s.buildUser(newUser)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Registered user ", created.Username, " with id ", created.ID)
	return created, nil
}

// CreateBatch registers several users in one transaction after checking
// uniqueness for every payload.
// It returns the created Users and any error encountered during the creation process.
func (s *userService) CreateBatch(ctx context.Context, newUsers []*users.NewUser) ([]*users.User, error) {
	// Validate and pre-check everything before hashing, so a bad payload
	// late in the batch costs nothing
	for _, newUser := range newUsers {
		if err := newUser.Validate(); err != nil {
			return nil, err
		}
		if err := s.ensureLoginFree(ctx, newUser.Username, newUser.Email); err != nil {
			return nil, err
		}
	}

	batch := make([]*users.User, len(newUsers))
	for i, newUser := range newUsers {
		user, err := s.buildUser(newUser)
		if err != nil {
			return nil, err
		}
		batch[i] = user
	}

	created, err := s.userRepo.CreateBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Registered ", len(created), " users")
	return created, nil
}

// GetByID retrieves a user by its unique ID.
// It returns the User and any error encountered during the retrieval process.
func (s *userService) GetByID(ctx context.Context, id int64) (*users.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListByIDs retrieves the users matching the given IDs. IDs without a
// matching user are skipped silently.
func (s *userService) ListByIDs(ctx context.Context, ids []int64) ([]*users.User, error) {
	return s.userRepo.ListByIDs(ctx, ids)
}

// List retrieves all users.
func (s *userService) List(ctx context.Context) ([]*users.User, error) {
	return s.userRepo.List(ctx)
}

// Update applies a partial update to a user, hashing the password when one is set.
// It returns the updated User and any error encountered during the update process.
func (s *userService) Update(ctx context.Context, id int64, update *users.UserUpdate) (*users.User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	patch := &users.UserPatch{
		Username: update.Username,
		Email:    update.Email,
		FullName: update.FullName,
	}
	if update.Password != nil {
		passwordHash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &passwordHash
	}

	return s.userRepo.UpdateByID(ctx, id, patch)
}

// Delete removes a user by its ID.
// It returns the removed User and any error encountered during the deletion process.
func (s *userService) Delete(ctx context.Context, id int64) (*users.User, error) {
	return s.userRepo.DeleteByID(ctx, id)
}

// ensureLoginFree reports a DuplicateError naming the first taken column
func (s *userService) ensureLoginFree(ctx context.Context, username, email string) error {
	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	if taken {
		return &users.DuplicateError{Field: "username"}
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return &users.DuplicateError{Field: "email"}
	}

	return nil
}

// buildUser hashes the password and assembles the storable entity
func (s *userService) buildUser(newUser *users.NewUser) (*users.User, error) {
	passwordHash, err := s.hasher.Hash(newUser.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &users.User{
		Username:     newUser.Username,
		Email:        newUser.Email,
		FullName:     newUser.FullName,
		PasswordHash: passwordHash,
	}, nil
}
