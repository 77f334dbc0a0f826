package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/persistence/models"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) (*users.User, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)
	model.ID = 0 // let the database assign it

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &users.DuplicateError{}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", model.ID)
	return model.ToDomain(), nil
}

func (r *gormUserRepository) CreateBatch(ctx context.Context, batch []*users.User) ([]*users.User, error) {
	modelList := make([]*models.UserModel, len(batch))
	for i, user := range batch {
		if err := user.Validate(); err != nil {
			return nil, fmt.Errorf("validation error: %w", err)
		}

		model := &models.UserModel{}
		model.FromDomain(user)
		model.ID = 0
		modelList[i] = model
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range modelList {
			if err := tx.Create(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &users.DuplicateError{}
		}
		return nil, fmt.Errorf("failed to create users: %w", err)
	}

	created := make([]*users.User, len(modelList))
	for i, model := range modelList {
		created[i] = model.ToDomain()
	}

	r.logger.Info("Created ", len(created), " users")
	return created, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = ?", users.NormalizeLogin(username)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", users.NormalizeLogin(email)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) ListByIDs(ctx context.Context, ids []int64) ([]*users.User, error) {
	if len(ids) == 0 {
		return []*users.User{}, nil
	}

	var modelList []*models.UserModel
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users by ids: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) List(ctx context.Context) ([]*users.User, error) {
	var modelList []*models.UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("LOWER(username) = ?", users.NormalizeLogin(username)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("LOWER(email) = ?", users.NormalizeLogin(email)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, id int64, patch *users.UserPatch) (*users.User, error) {
	updates := map[string]interface{}{}
	if patch.Username != nil {
		updates["username"] = *patch.Username
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.PasswordHash != nil {
		updates["hashed_password"] = *patch.PasswordHash
	}

	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, &users.DuplicateError{}
			}
			return nil, fmt.Errorf("failed to update user: %w", err)
		}

		// Re-fetch so generated columns like updated_at are current
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch updated user: %w", err)
		}
	}

	r.logger.Info("Updated user with id ", id)
	return model.ToDomain(), nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, id int64) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	r.logger.Info("Deleted user with id ", id)
	return model.ToDomain(), nil
}
