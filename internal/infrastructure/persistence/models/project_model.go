package models

import (
	"time"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
)

// ProjectModel is the GORM database model for projects (infrastructure concern)
type ProjectModel struct {
	ID             int64                  `gorm:"primaryKey;autoIncrement"`
	Name           string                 `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Status         projects.ProjectStatus `gorm:"not null;default:new;type:varchar(20)"`
	CreateTime     time.Time              `gorm:"not null;autoCreateTime"`
	StartTime      *time.Time
	CompleteTime   *time.Time
	Description    *string `gorm:"type:text"`
	PersonInCharge *int64  `gorm:"index"`

	// Person backs the person_in_charge reference. Deleting a user leaves
	// their projects behind with the reference cleared.
	Person *UserModel `gorm:"foreignKey:PersonInCharge;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *projects.Project {
	return &projects.Project{
		ID:             m.ID,
		Name:           m.Name,
		Status:         m.Status,
		CreateTime:     m.CreateTime,
		StartTime:      m.StartTime,
		CompleteTime:   m.CompleteTime,
		Description:    m.Description,
		PersonInCharge: m.PersonInCharge,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *projects.Project) {
	m.ID = p.ID
	m.Name = p.Name
	m.Status = p.Status
	m.CreateTime = p.CreateTime
	m.StartTime = p.StartTime
	m.CompleteTime = p.CompleteTime
	m.Description = p.Description
	m.PersonInCharge = p.PersonInCharge
}

// FromNewDomain fills the model from a creation request. The id and the
// creation time are left for the database to assign.
func (m *ProjectModel) FromNewDomain(p *projects.NewProject) {
	m.Name = p.Name
	m.Status = p.Status
	m.Description = p.Description
	m.PersonInCharge = p.PersonInCharge
}
