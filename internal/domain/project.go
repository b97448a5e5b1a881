package domain

import (
	"time"
)

// Platform identifies the target app store(s) of a project
type Platform string

const (
	PlatformIOS     Platform = "iOS"
	PlatformAndroid Platform = "Android"
	PlatformBoth    Platform = "Both"
)

// Valid reports whether p is one of the three supported platform values
func (p Platform) Valid() bool {
	return p == PlatformIOS || p == PlatformAndroid || p == PlatformBoth
}

// ProjectStatus represents the submission state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusSubmitted ProjectStatus = "submitted"
	ProjectStatusApproved  ProjectStatus = "approved"
	ProjectStatusRejected  ProjectStatus = "rejected"
)

// Project represents one app-store submission effort.
// Deleting a project cascades to its tasks, checklist items, rejections
// and AI conversations.
type Project struct {
	BaseModel
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Platform    Platform      `gorm:"type:varchar(20);not null;index:idx_projects_platform" json:"platform"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	StartDate   *time.Time    `gorm:"type:timestamp" json:"start_date,omitempty"`
	PublishDate *time.Time    `gorm:"type:timestamp" json:"publish_date,omitempty"`

	Tasks          []Task           `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	ChecklistItems []ChecklistItem  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"checklist_items,omitempty"`
	Rejections     []Rejection      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"rejections,omitempty"`
	Conversations  []AIConversation `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
