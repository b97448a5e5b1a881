package dto

import (
	"time"

	"github.com/google/uuid"

	"app-submission-api/internal/domain"
)

// CreateRejectionRequest represents the request to record a store rejection
type CreateRejectionRequest struct {
	ProjectID     uuid.UUID  `json:"project_id" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Platform      string     `json:"platform" binding:"required" example:"iOS"`
	Reason        string     `json:"reason" binding:"required,min=1" example:"Guideline 2.1 - Performance: App crashed on launch"`
	RejectionDate *time.Time `json:"rejection_date,omitempty"`
}

// UpdateRejectionRequest represents the request to update a rejection record
type UpdateRejectionRequest struct {
	Status     *string `json:"status,omitempty" binding:"omitempty,oneof=open in_progress resolved" example:"resolved"`
	ActionPlan *string `json:"action_plan,omitempty"`
}

// RejectionResponse represents the rejection response
type RejectionResponse struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"project_id"`
	Platform      string    `json:"platform"`
	RejectionDate time.Time `json:"rejection_date"`
	Reason        string    `json:"reason"`
	AIAnalysis    *string   `json:"ai_analysis,omitempty"`
	ActionPlan    *string   `json:"action_plan,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToRejectionResponse converts a domain rejection to its response form
func ToRejectionResponse(r *domain.Rejection) RejectionResponse {
	return RejectionResponse{
		ID:            r.ID,
		ProjectID:     r.ProjectID,
		Platform:      string(r.Platform),
		RejectionDate: r.RejectionDate,
		Reason:        r.Reason,
		AIAnalysis:    r.AIAnalysis,
		ActionPlan:    r.ActionPlan,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToRejectionResponses converts a slice of domain rejections
func ToRejectionResponses(rejections []domain.Rejection) []RejectionResponse {
	responses := make([]RejectionResponse, 0, len(rejections))
	for i := range rejections {
		responses = append(responses, ToRejectionResponse(&rejections[i]))
	}
	return responses
}
