package projects

import (
	"context"
)

// ProjectService defines operations for managing projects.
type ProjectService interface {
	// GetByID retrieves a project by its unique ID.
	// It returns the Project and any error encountered during the retrieval process.
	GetByID(ctx context.Context, id int64) (*Project, error)

	// ListPage retrieves one page of projects considering the query's
	// filters, ordering and paging.
	ListPage(ctx context.Context, query *ProjectQuery) (*ProjectPage, error)

	// Create stores a single project after checking that the name is free
	// and the person in charge exists.
	// It returns the created Project and any error encountered during the creation process.
	Create(ctx context.Context, newProject *NewProject) (*Project, error)

	// CreateBatch stores several projects in one transaction. Constraint
	// violations surface as integrity errors from storage.
	CreateBatch(ctx context.Context, newProjects []*NewProject) ([]*Project, error)

	// Update applies a partial update to a project by its ID.
	// It returns the updated Project and any error encountered during the update process.
	Update(ctx context.Context, id int64, update *ProjectUpdate) (*Project, error)

	// Delete removes a project by its ID.
	// It returns the removed Project and any error encountered during the deletion process.
	Delete(ctx context.Context, id int64) (*Project, error)
}

// ProjectRepository defines the interface for project persistence operations
type ProjectRepository interface {
	Create(ctx context.Context, newProject *NewProject) (*Project, error)
	CreateBatch(ctx context.Context, batch []*NewProject) ([]*Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	ListPage(ctx context.Context, query *ProjectQuery) (*ProjectPage, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	UpdateByID(ctx context.Context, id int64, update *ProjectUpdate) (*Project, error)
	DeleteByID(ctx context.Context, id int64) (*Project, error)
}
