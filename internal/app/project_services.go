package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// projectService implements the ProjectService interface for managing projects
type projectService struct {
	projectRepo projects.ProjectRepository
	userRepo    users.UserRepository
	logger      logger.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo projects.ProjectRepository, userRepo users.UserRepository, logger logger.Logger) (projects.ProjectService, error) {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}, nil
}

// GetByID retrieves a project by its unique ID.
// It returns the Project and any error encountered during the retrieval process.
func (s *projectService) GetByID(ctx context.Context, id int64) (*projects.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListPage retrieves one page of the project listing with filters applied.
// It returns the ProjectPage and any error encountered during the retrieval process.
func (s *projectService) ListPage(ctx context.Context, query *projects.ProjectQuery) (*projects.ProjectPage, error) {
	return s.projectRepo.ListPage(ctx, query)
}

// Create adds a single project after checking that the name is free and the
// person in charge exists.
// It returns the created Project and any error encountered during the creation process.
func (s *projectService) Create(ctx context.Context, newProject *projects.NewProject) (*projects.Project, error) {
	if err := newProject.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.projectRepo.ExistsByName(ctx, newProject.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check project name uniqueness: %w", err)
	}
	if taken {
		return nil, projects.ErrNameTaken
	}

	if newProject.PersonInCharge != nil {
		if _, err := s.userRepo.GetByID(ctx, *newProject.PersonInCharge); err != nil {
			if errors.Is(err, users.ErrNotFound) {
				return nil, projects.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to check person in charge: %w", err)
		}
	}

	created, err := s.projectRepo.Create(ctx, newProject)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Opened project ", created.Name, " with id ", created.ID)
	return created, nil
}

// CreateBatch adds several projects in one transaction. Constraint
// violations surface as integrity errors from storage.
// It returns the created Projects and any error encountered during the creation process.
func (s *projectService) CreateBatch(ctx context.Context, batch []*projects.NewProject) ([]*projects.Project, error) {
	for _, newProject := range batch {
		if err := newProject.Validate(); err != nil {
			return nil, err
		}
	}

	return s.projectRepo.CreateBatch(ctx, batch)
}

// Update applies a partial update to a project.
// It returns the updated Project and any error encountered during the update process.
func (s *projectService) Update(ctx context.Context, id int64, update *projects.ProjectUpdate) (*projects.Project, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	return s.projectRepo.UpdateByID(ctx, id, update)
}

// Delete removes a project by its ID.
// It returns the removed Project and any error encountered during the deletion process.
func (s *projectService) Delete(ctx context.Context, id int64) (*projects.Project, error) {
	return s.projectRepo.DeleteByID(ctx, id)
}
