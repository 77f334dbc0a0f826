package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/persistence/models"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.ProjectRepository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func translateProjectError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return projects.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return projects.ErrForeignKey
	default:
		return nil
	}
}

func (r *gormProjectRepository) Create(ctx context.Context, project *projects.NewProject) (*projects.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromNewDomain(project)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if translated := translateProjectError(err); translated != nil {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	r.logger.Info("Created project with id ", model.ID)
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) CreateBatch(ctx context.Context, batch []*projects.NewProject) ([]*projects.Project, error) {
	modelList := make([]*models.ProjectModel, len(batch))
	for i, project := range batch {
		if err := project.Validate(); err != nil {
			return nil, fmt.Errorf("validation error: %w", err)
		}

		model := &models.ProjectModel{}
		model.FromNewDomain(project)
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
		if translated := translateProjectError(err); translated != nil {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to create projects: %w", err)
	}

	created := make([]*projects.Project, len(modelList))
	for i, model := range modelList {
		created[i] = model.ToDomain()
	}

	r.logger.Info("Created ", len(created), " projects")
	return created, nil
}

func (r *gormProjectRepository) GetByID(ctx context.Context, id int64) (*projects.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projects.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) ListPage(ctx context.Context, query *projects.ProjectQuery) (*projects.ProjectPage, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	perPage := query.PerPage
	if perPage > projects.PerPageMax {
		perPage = projects.PerPageMax
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	filtered := func(tx *gorm.DB) *gorm.DB {
		if query.Status != nil {
			tx = tx.Where("status = ?", *query.Status)
		}
		if query.PersonID != nil {
			tx = tx.Where("person_in_charge = ?", *query.PersonID)
		}
		return tx
	}

	var total int64
	if err := filtered(r.db.WithContext(ctx).Model(&models.ProjectModel{})).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	direction := "asc"
	if query.Desc {
		direction = "desc"
	}

	var modelList []*models.ProjectModel
	err := filtered(r.db.WithContext(ctx)).
		Order(fmt.Sprintf("%s %s", query.OrderBy, direction)).
		Offset(offset).
		Limit(perPage).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	items := make([]*projects.Project, len(modelList))
	for i, model := range modelList {
		items[i] = model.ToDomain()
	}

	return &projects.ProjectPage{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		HasPrev:    page > 1,
		HasNext:    int64(offset+len(items)) < total,
	}, nil
}

func (r *gormProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check project name existence: %w", err)
	}
	return count > 0, nil
}

func (r *gormProjectRepository) UpdateByID(ctx context.Context, id int64, update *projects.ProjectUpdate) (*projects.Project, error) {
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updates := map[string]interface{}{}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if update.StartTime != nil {
		updates["start_time"] = *update.StartTime
	}
	if update.CompleteTime != nil {
		updates["complete_time"] = *update.CompleteTime
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.PersonInCharge != nil {
		updates["person_in_charge"] = *update.PersonInCharge
	}

	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projects.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model).Updates(updates).Error; err != nil {
			if translated := translateProjectError(err); translated != nil {
				return nil, translated
			}
			return nil, fmt.Errorf("failed to update project: %w", err)
		}

		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch updated project: %w", err)
		}
	}

	r.logger.Info("Updated project with id ", id)
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) DeleteByID(ctx context.Context, id int64) (*projects.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projects.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	r.logger.Info("Deleted project with id ", id)
	return model.ToDomain(), nil
}
