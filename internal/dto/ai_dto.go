package dto

import (
	"time"

	"github.com/google/uuid"
)

// AIChatRequest represents a free-form assistant question scoped to a project
type AIChatRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Message   string    `json:"message" binding:"required,min=1" example:"What screenshots does the App Store require?"`
}

// AIChatResponse echoes the question together with the model's answer
type AIChatResponse struct {
	ProjectID   uuid.UUID `json:"project_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// AIAnalysisRequest represents an ad-hoc rejection analysis request
type AIAnalysisRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required,min=1" example:"Guideline 2.1 - Performance: App crashed on launch"`
	Platform        string `json:"platform" binding:"required" example:"iOS"`
}

// AIAnalysisResponse carries the model's analysis of a rejection reason
type AIAnalysisResponse struct {
	Platform        string    `json:"platform"`
	RejectionReason string    `json:"rejection_reason"`
	Analysis        string    `json:"analysis"`
	ActionPlan      string    `json:"action_plan"`
	Timestamp       time.Time `json:"timestamp"`
}

// ConversationMessage is one entry in a project's persisted assistant log
type ConversationMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
