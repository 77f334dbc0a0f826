package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/utils"
)

// ProjectHandler defines the interface for handling project-related operations
type ProjectHandler interface {
	GetByID(ctx *gin.Context)
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	CreateBulk(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// projectHandler struct holds the services
type projectHandler struct {
	projectService projects.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService projects.ProjectService) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
	}
}

// GetByID handles the GET request to fetch a project by ID
// @Summary Retrieve a project by ID
// @Tags Project
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{project_id} [get]
func (handler *projectHandler) GetByID(ctx *gin.Context) {
	projectID, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	project, err := handler.projectService.GetByID(ctx.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			respondNotFound(ctx, projectNotFoundDetail(projectID))
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProjectResponse(project))
}

// List handles the GET request to fetch one page of projects with optional query parameters
// @Summary List projects page by page
// @Description List projects with paging, optional status and person filters and configurable ordering.
// @Tags Project
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Param status query string false "Status filter" Enums(new, in_progress, completed)
// @Param person_id query int false "Person in charge filter"
// @Param order_by query string false "Ordering field" Enums(create_time, start_time, complete_time)
// @Param desc query bool false "Newest first" default(true)
// @Success 200 {object} ProjectPageResponse
// @Failure 422 {object} ErrorResponse
// @Router /projects/ [get]
func (handler *projectHandler) List(ctx *gin.Context) {
	query := projects.NewProjectQuery()

	if page := ctx.Query("page"); len(page) > 0 {
		query.Page = utils.ConvertToInt(page)
	}

	if perPage := ctx.Query("per_page"); len(perPage) > 0 {
		query.PerPage = utils.ConvertToInt(perPage)
	}

	if status := ctx.Query("status"); len(status) > 0 {
		projectStatus := projects.ProjectStatus(status)
		query.Status = &projectStatus
	}

	if personID := ctx.Query("person_id"); len(personID) > 0 {
		id := utils.ConvertToInt64(personID)
		query.PersonID = &id
	}

	if orderBy := ctx.Query("order_by"); len(orderBy) > 0 {
		query.OrderBy = orderBy
	}

	if desc := ctx.Query("desc"); len(desc) > 0 {
		query.Desc = utils.ConvertToBool(desc)
	}

	if err := query.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	page, err := handler.projectService.ListPage(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProjectPageResponse(page))
}

// Create handles the POST request to open a project
// @Summary Create a project
// @Description Open a project after checking that the name is free and the person in charge exists.
// @Tags Project
// @Accept json
// @Produce json
// @Param requestBody body CreateProjectRequest true "Project Data"
// @Success 201 {object} ProjectResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /projects/ [post]
func (handler *projectHandler) Create(ctx *gin.Context) {
	var request CreateProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	newProject := request.ToDomain()
	if err := newProject.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	project, err := handler.projectService.Create(ctx.Request.Context(), newProject)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewProjectResponse(project))
}

// CreateBulk handles the POST request to open several projects at once
// @Summary Create projects in bulk
// @Description Create several projects in one transaction from a JSON array of project payloads.
// @Tags Project
// @Accept json
// @Produce json
// @Param requestBody body []CreateProjectRequest true "Project Payloads"
// @Success 201 {array} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /projects/bulk [post]
func (handler *projectHandler) CreateBulk(ctx *gin.Context) {
	var requests []*CreateProjectRequest
	if err := ctx.ShouldBindJSON(&requests); err != nil {
		respondValidationError(ctx, err)
		return
	}

	batch := make([]*projects.NewProject, 0, len(requests))
	for _, request := range requests {
		newProject := request.ToDomain()
		if err := newProject.Validate(); err != nil {
			respondValidationError(ctx, err)
			return
		}
		batch = append(batch, newProject)
	}

	created, err := handler.projectService.CreateBatch(ctx.Request.Context(), batch)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewProjectResponses(created))
}

// Update handles the PATCH request to partially update a project
// @Summary Update a project
// @Description Apply a partial update. The project name and creation time are immutable.
// @Tags Project
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param requestBody body UpdateProjectRequest true "Fields to update"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /projects/{project_id} [patch]
func (handler *projectHandler) Update(ctx *gin.Context) {
	projectID, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	var request UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondValidationError(ctx, err)
		return
	}

	update := request.ToDomain()
	if err := update.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	project, err := handler.projectService.Update(ctx.Request.Context(), projectID, update)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			respondNotFound(ctx, projectNotFoundDetail(projectID))
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProjectResponse(project))
}

// Delete handles the DELETE request to remove a project
// @Summary Delete a project
// @Description Remove a project and echo the removed entry with a deletion marker.
// @Tags Project
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} ProjectDeleteResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{project_id} [delete]
func (handler *projectHandler) Delete(ctx *gin.Context) {
	projectID, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	project, err := handler.projectService.Delete(ctx.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			respondNotFound(ctx, projectNotFoundDetail(projectID))
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProjectDeleteResponse(project))
}

func parseProjectID(ctx *gin.Context) (int64, bool) {
	projectID, err := strconv.ParseInt(ctx.Param("project_id"), 10, 64)
	if err != nil {
		respondValidationError(ctx, fmt.Errorf("project_id must be an integer"))
		return 0, false
	}
	return projectID, true
}

func projectNotFoundDetail(projectID int64) string {
	return fmt.Sprintf("project with ID %d not found", projectID)
}
