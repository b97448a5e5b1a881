package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AIConversation keeps the assistant message log of a project. Messages is
// a JSON array of {role, content, timestamp} objects appended by the AI
// passthrough endpoints.
type AIConversation struct {
	BaseModel
	ProjectID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_ai_conversations_project_id" json:"project_id"`
	Messages  datatypes.JSON `gorm:"type:jsonb" json:"messages"`
}

// TableName specifies the table name for AIConversation
func (AIConversation) TableName() string {
	return "ai_conversations"
}
