package dto

import (
	"time"

	"github.com/google/uuid"

	"app-submission-api/internal/domain"
)

// CreateProjectRequest represents the request to create a new project
// @Description Request body for creating a new submission project.
// @Description When auto_generate_tasks is true (the default) the default
// @Description task and checklist templates for the platform are materialized.
type CreateProjectRequest struct {
	Name              string     `json:"name" binding:"required,min=1,max=200" example:"MyApp v2 release"`
	Platform          string     `json:"platform" binding:"required" example:"iOS"`
	Description       string     `json:"description" binding:"max=1000" example:"Native submission for the spring release"`
	StartDate         *time.Time `json:"start_date,omitempty" example:"2025-04-01T00:00:00Z"`
	PublishDate       *time.Time `json:"publish_date,omitempty" example:"2025-05-01T00:00:00Z"`
	AutoGenerateTasks *bool      `json:"auto_generate_tasks,omitempty" example:"true"`
}

// ShouldGenerateTasks reports whether defaults should be materialized (default true)
func (r *CreateProjectRequest) ShouldGenerateTasks() bool {
	return r.AutoGenerateTasks == nil || *r.AutoGenerateTasks
}

// UpdateProjectRequest represents the request to update a project. All fields are optional.
type UpdateProjectRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200" example:"MyApp v2 release"`
	Platform    *string    `json:"platform,omitempty" example:"Both"`
	Description *string    `json:"description" binding:"omitempty,max=1000" example:"Updated description"`
	Status      *string    `json:"status,omitempty" binding:"omitempty,oneof=active submitted approved rejected" example:"submitted"`
	StartDate   *time.Time `json:"start_date,omitempty" example:"2025-04-01T00:00:00Z"`
	PublishDate *time.Time `json:"publish_date,omitempty" example:"2025-05-01T00:00:00Z"`
}

// UpdateScheduleRequest represents the schedule patch.
// @Description start_date must be before or equal to publish_date when both are set.
type UpdateScheduleRequest struct {
	StartDate   *time.Time `json:"start_date,omitempty" example:"2025-04-01T00:00:00Z"`
	PublishDate *time.Time `json:"publish_date,omitempty" example:"2025-05-01T00:00:00Z"`
}

// ProjectResponse represents the project response
type ProjectResponse struct {
	ID          uuid.UUID  `json:"id" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Name        string     `json:"name" example:"MyApp v2 release"`
	Platform    string     `json:"platform" example:"iOS"`
	Description string     `json:"description" example:"Native submission for the spring release"`
	Status      string     `json:"status" example:"active"`
	StartDate   *time.Time `json:"start_date,omitempty" example:"2025-04-01T00:00:00Z"`
	PublishDate *time.Time `json:"publish_date,omitempty" example:"2025-05-01T00:00:00Z"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-03-15T10:30:00Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2025-03-15T14:20:00Z"`
}

// GenerateDefaultsResponse reports how many template rows a materialization created
type GenerateDefaultsResponse struct {
	ProjectID uuid.UUID `json:"project_id" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Platform  string    `json:"platform" example:"iOS"`
	Created   int       `json:"created" example:"24"`
}

// ToProjectResponse converts a domain project to its response form
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Platform:    string(p.Platform),
		Description: p.Description,
		Status:      string(p.Status),
		StartDate:   p.StartDate,
		PublishDate: p.PublishDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProjectResponses converts a slice of domain projects
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, ToProjectResponse(&projects[i]))
	}
	return responses
}
