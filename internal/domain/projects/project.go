package projects

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	StatusNew        ProjectStatus = "new"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
)

// Fields the project listing can be ordered by.
const (
	OrderByCreateTime   = "create_time"
	OrderByStartTime    = "start_time"
	OrderByCompleteTime = "complete_time"
)

// Pagination defaults and limits for the project listing.
const (
	PageDefault    = 1
	PerPageDefault = 10
	PerPageMax     = 100
)

// Project entity
type Project struct {
	ID             int64         `validate:"omitempty,min=1"`
	Name           string        `validate:"required,max=255"`
	Status         ProjectStatus `validate:"required,oneof=new in_progress completed"`
	CreateTime     time.Time
	StartTime      *time.Time
	CompleteTime   *time.Time
	Description    *string
	PersonInCharge *int64 `validate:"omitnil,min=1"`
}

// Validate for validating Project struct
func (p *Project) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// NewProject carries the attributes required to create a project. The
// status defaults to "new" when left empty.
type NewProject struct {
	Name           string        `validate:"required,max=255"`
	Status         ProjectStatus `validate:"required,oneof=new in_progress completed"`
	Description    *string
	PersonInCharge *int64 `validate:"omitnil,min=1"`
}

// Validate applies the status default and checks all constraints.
func (p *NewProject) Validate() error {
	if p.Status == "" {
		p.Status = StatusNew
	}

	validate := validator.New()

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ProjectUpdate carries optional fields for a partial update. The project
// name and creation time are immutable. An update with no fields set is a
// no-op that returns the current row.
type ProjectUpdate struct {
	Status         *ProjectStatus `validate:"omitnil,oneof=new in_progress completed"`
	StartTime      *time.Time
	CompleteTime   *time.Time
	Description    *string
	PersonInCharge *int64 `validate:"omitnil,min=1"`
}

// Validate for validating ProjectUpdate struct
func (p *ProjectUpdate) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ProjectQuery defines filters, ordering and paging for the project listing.
type ProjectQuery struct {
	Page     int            `validate:"min=1"`
	PerPage  int            `validate:"min=1,max=100"`
	Status   *ProjectStatus `validate:"omitnil,oneof=new in_progress completed"`
	PersonID *int64         `validate:"omitnil,min=1"`
	OrderBy  string         `validate:"required,oneof=create_time start_time complete_time"`
	Desc     bool
}

// NewProjectQuery constructs a ProjectQuery with default paging and ordering:
// first page, ten per page, newest first by creation time.
func NewProjectQuery() *ProjectQuery {
	return &ProjectQuery{
		Page:    PageDefault,
		PerPage: PerPageDefault,
		OrderBy: OrderByCreateTime,
		Desc:    true,
	}
}

// Validate for validating ProjectQuery struct
func (q *ProjectQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ProjectPage is one page of the project listing.
type ProjectPage struct {
	Items      []*Project
	Page       int
	PerPage    int
	TotalCount int64
	HasPrev    bool
	HasNext    bool
}
