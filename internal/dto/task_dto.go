package dto

import (
	"time"

	"github.com/google/uuid"

	"app-submission-api/internal/domain"
)

// CreateTaskRequest represents the request to create a user task
type CreateTaskRequest struct {
	ProjectID        uuid.UUID  `json:"project_id" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title            string     `json:"title" binding:"required,min=1,max=300" example:"Prepare release notes"`
	Description      string     `json:"description" binding:"max=2000"`
	Phase            string     `json:"phase" binding:"required" example:"アプリ申請"`
	PhaseNumber      *int       `json:"phase_number,omitempty" example:"8"`
	StepNumber       string     `json:"step_number,omitempty" example:"8.4"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Priority         *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high" example:"medium"`
	EstimatedDays    string     `json:"estimated_days,omitempty" example:"1-2日"`
	AssignedTo       string     `json:"assigned_to,omitempty" example:"開発者"`
	PlatformSpecific string     `json:"platform_specific,omitempty" example:"ios"`
	Order            int        `json:"order" example:"4"`
}

// UpdateTaskRequest represents the request to update a task. All fields are optional.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=300"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Phase       *string    `json:"phase,omitempty"`
	Status      *string    `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress completed" example:"in_progress"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Completed   *bool      `json:"completed,omitempty"`
	Memo        *string    `json:"memo,omitempty"`
}

// TaskResponse represents the task response
type TaskResponse struct {
	ID               uuid.UUID  `json:"id"`
	ProjectID        uuid.UUID  `json:"project_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Phase            string     `json:"phase"`
	PhaseNumber      *int       `json:"phase_number,omitempty"`
	StepNumber       string     `json:"step_number,omitempty"`
	Status           string     `json:"status"`
	Completed        bool       `json:"completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Priority         string     `json:"priority"`
	Order            int        `json:"order"`
	EstimatedDays    string     `json:"estimated_days,omitempty"`
	AssignedTo       string     `json:"assigned_to,omitempty"`
	PlatformSpecific string     `json:"platform_specific,omitempty"`
	IsDefault        bool       `json:"is_default"`
	Memo             string     `json:"memo,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PhaseGroupResponse is one bucket of the grouped task listing
type PhaseGroupResponse struct {
	PhaseNumber int            `json:"phase_number" example:"1"`
	PhaseName   string         `json:"phase_name" example:"アカウント登録"`
	Tasks       []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain task to its response form
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:               t.ID,
		ProjectID:        t.ProjectID,
		Title:            t.Title,
		Description:      t.Description,
		Phase:            t.Phase,
		PhaseNumber:      t.PhaseNumber,
		StepNumber:       t.StepNumber,
		Status:           string(t.Status),
		Completed:        t.Completed,
		CompletedAt:      t.CompletedAt,
		DueDate:          t.DueDate,
		Priority:         string(t.Priority),
		Order:            t.Order,
		EstimatedDays:    t.EstimatedDays,
		AssignedTo:       t.AssignedTo,
		PlatformSpecific: t.PlatformSpecific,
		IsDefault:        t.IsDefault,
		Memo:             t.Memo,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of domain tasks
func ToTaskResponses(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, ToTaskResponse(&tasks[i]))
	}
	return responses
}
