package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the progress state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is one step of a submission workflow. Default tasks are materialized
// from the template catalog (IsDefault=true); everything else is
// user-authored. Phase carries a point-in-time copy of the catalog's phase
// name at materialization: later catalog edits never rewrite stored rows.
type Task struct {
	BaseModel
	ProjectID        uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"project_id"`
	Title            string       `gorm:"type:varchar(255);not null" json:"title"`
	Description      string       `gorm:"type:text" json:"description"`
	Phase            string       `gorm:"type:varchar(255)" json:"phase"`
	PhaseNumber      *int         `gorm:"index:idx_tasks_phase_number" json:"phase_number,omitempty"`
	StepNumber       string       `gorm:"type:varchar(20)" json:"step_number"`
	Status           TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Completed        bool         `gorm:"not null;default:false" json:"completed"`
	CompletedAt      *time.Time   `gorm:"type:timestamp" json:"completed_at,omitempty"`
	DueDate          *time.Time   `gorm:"type:timestamp" json:"due_date,omitempty"`
	Priority         TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Order            int          `gorm:"column:task_order;not null;default:0" json:"order"`
	EstimatedDays    string       `gorm:"type:varchar(100)" json:"estimated_days"`
	AssignedTo       string       `gorm:"type:varchar(100)" json:"assigned_to"`
	PlatformSpecific string       `gorm:"type:text" json:"platform_specific"`
	IsDefault        bool         `gorm:"not null;default:false;index:idx_tasks_is_default" json:"is_default"`
	Memo             string       `gorm:"type:text" json:"memo"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
