package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
)

// ConversationRepository defines the interface for assistant conversation logs
type ConversationRepository interface {
	FindByProject(ctx context.Context, projectID uuid.UUID) (*domain.AIConversation, error)
	Upsert(ctx context.Context, conversation *domain.AIConversation) error
}

// conversationRepositoryImpl is the GORM implementation of ConversationRepository
type conversationRepositoryImpl struct {
	db *gorm.DB
}

// NewConversationRepository creates a new instance of ConversationRepository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepositoryImpl{db: db}
}

// FindByProject returns a project's conversation log, or nil when none exists yet
func (r *conversationRepositoryImpl) FindByProject(ctx context.Context, projectID uuid.UUID) (*domain.AIConversation, error) {
	var conversation domain.AIConversation
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// Upsert creates the log on first write and saves it afterwards
func (r *conversationRepositoryImpl) Upsert(ctx context.Context, conversation *domain.AIConversation) error {
	if conversation.ID == uuid.Nil {
		return r.db.WithContext(ctx).Create(conversation).Error
	}
	return r.db.WithContext(ctx).Save(conversation).Error
}
