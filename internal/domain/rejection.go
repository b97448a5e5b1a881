package domain

import (
	"time"

	"github.com/google/uuid"
)

// RejectionStatus represents the handling state of a store rejection
type RejectionStatus string

const (
	RejectionStatusOpen       RejectionStatus = "open"
	RejectionStatusInProgress RejectionStatus = "in_progress"
	RejectionStatusResolved   RejectionStatus = "resolved"
)

// Rejection records one store-review rejection. AIAnalysis and ActionPlan
// are filled by the language-model client at creation time and stay empty
// when that call fails; persisting the rejection never depends on it.
type Rejection struct {
	BaseModel
	ProjectID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_rejections_project_id" json:"project_id"`
	Platform      Platform        `gorm:"type:varchar(20);not null" json:"platform"`
	RejectionDate time.Time       `gorm:"type:timestamp;not null" json:"rejection_date"`
	Reason        string          `gorm:"type:text;not null" json:"reason"`
	AIAnalysis    *string         `gorm:"type:text" json:"ai_analysis"`
	ActionPlan    *string         `gorm:"type:text" json:"action_plan"`
	Status        RejectionStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
}

// TableName specifies the table name for Rejection
func (Rejection) TableName() string {
	return "rejections"
}
