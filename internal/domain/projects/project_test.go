//go:build unit
// +build unit

package projects

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func statusPtr(s ProjectStatus) *ProjectStatus {
	return &s
}

func TestNewProject_Validate(t *testing.T) {
	tests := []struct {
		name    string
		project *NewProject
		wantErr bool
	}{
		{
			name:    "valid with defaults",
			project: &NewProject{Name: "apollo"},
			wantErr: false,
		},
		{
			name: "valid with explicit status",
			project: &NewProject{
				Name:           "gemini",
				Status:         StatusInProgress,
				PersonInCharge: int64Ptr(1),
			},
			wantErr: false,
		},
		{
			name:    "missing name",
			project: &NewProject{},
			wantErr: true,
		},
		{
			name:    "name too long",
			project: &NewProject{Name: strings.Repeat("x", 256)},
			wantErr: true,
		},
		{
			name:    "unknown status",
			project: &NewProject{Name: "apollo", Status: "paused"},
			wantErr: true,
		},
		{
			name: "person id below one",
			project: &NewProject{
				Name:           "apollo",
				PersonInCharge: int64Ptr(0),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProject_Validate_DefaultsStatus(t *testing.T) {
	project := &NewProject{Name: "apollo"}

	require.NoError(t, project.Validate())
	assert.Equal(t, StatusNew, project.Status)
}

func TestProjectUpdate_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		update  *ProjectUpdate
		wantErr bool
	}{
		{
			name:    "empty update allowed",
			update:  &ProjectUpdate{},
			wantErr: false,
		},
		{
			name: "valid status and times",
			update: &ProjectUpdate{
				Status:    statusPtr(StatusCompleted),
				StartTime: &now,
			},
			wantErr: false,
		},
		{
			name:    "unknown status",
			update:  &ProjectUpdate{Status: statusPtr("archived")},
			wantErr: true,
		},
		{
			name:    "person id below one",
			update:  &ProjectUpdate{PersonInCharge: int64Ptr(-1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProjectQuery_Defaults(t *testing.T) {
	query := NewProjectQuery()

	assert.Equal(t, PageDefault, query.Page)
	assert.Equal(t, PerPageDefault, query.PerPage)
	assert.Equal(t, OrderByCreateTime, query.OrderBy)
	assert.True(t, query.Desc)
	assert.Nil(t, query.Status)
	assert.Nil(t, query.PersonID)
	assert.NoError(t, query.Validate())
}

func TestProjectQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *ProjectQuery)
		wantErr bool
	}{
		{
			name:    "valid filters",
			mutate:  func(q *ProjectQuery) { q.Status = statusPtr(StatusNew); q.PersonID = int64Ptr(2) },
			wantErr: false,
		},
		{
			name:    "page below one",
			mutate:  func(q *ProjectQuery) { q.Page = 0 },
			wantErr: true,
		},
		{
			name:    "per page above max",
			mutate:  func(q *ProjectQuery) { q.PerPage = PerPageMax + 1 },
			wantErr: true,
		},
		{
			name:    "unknown order field",
			mutate:  func(q *ProjectQuery) { q.OrderBy = "name" },
			wantErr: true,
		},
		{
			name:    "unknown status filter",
			mutate:  func(q *ProjectQuery) { q.Status = statusPtr("paused") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewProjectQuery()
			tt.mutate(query)

			err := query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
