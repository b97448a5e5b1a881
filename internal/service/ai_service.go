package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"app-submission-api/internal/client"
	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/repository"
	"app-submission-api/internal/response"
)

// AIService defines the interface for the assistant endpoints
type AIService interface {
	Chat(ctx context.Context, req *dto.AIChatRequest) (*dto.AIChatResponse, error)
	AnalyzeRejection(ctx context.Context, req *dto.AIAnalysisRequest) (*dto.AIAnalysisResponse, error)
}

// aiServiceImpl is the implementation of AIService
type aiServiceImpl struct {
	aiClient         client.AIClientInterface
	conversationRepo repository.ConversationRepository
	logger           *zap.Logger
}

// NewAIService creates a new instance of AIService
func NewAIService(aiClient client.AIClientInterface, conversationRepo repository.ConversationRepository, logger *zap.Logger) AIService {
	return &aiServiceImpl{
		aiClient:         aiClient,
		conversationRepo: conversationRepo,
		logger:           logger,
	}
}

// Chat answers a submission question and appends the exchange to the
// project's conversation log.
func (s *aiServiceImpl) Chat(ctx context.Context, req *dto.AIChatRequest) (*dto.AIChatResponse, error) {
	if s.aiClient == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "AI service is not configured", "")
	}

	answer, err := s.aiClient.Chat(ctx, req.Message)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "AI service error", err.Error())
	}

	now := time.Now().UTC()
	s.appendConversation(ctx, req, answer, now)

	return &dto.AIChatResponse{
		ProjectID:   req.ProjectID,
		UserMessage: req.Message,
		AIResponse:  answer,
		Timestamp:   now,
	}, nil
}

// AnalyzeRejection runs an ad-hoc analysis without touching stored rejections
func (s *aiServiceImpl) AnalyzeRejection(ctx context.Context, req *dto.AIAnalysisRequest) (*dto.AIAnalysisResponse, error) {
	if s.aiClient == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "AI service is not configured", "")
	}
	if !domain.Platform(req.Platform).Valid() {
		return nil, response.NewValidationError("platform must be one of: iOS, Android, Both", "")
	}

	analysis, actionPlan, err := s.aiClient.AnalyzeRejection(ctx, req.Platform, req.RejectionReason)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "AI service error", err.Error())
	}

	return &dto.AIAnalysisResponse{
		Platform:        req.Platform,
		RejectionReason: req.RejectionReason,
		Analysis:        analysis,
		ActionPlan:      actionPlan,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// appendConversation is best-effort; a storage failure must not fail the chat
func (s *aiServiceImpl) appendConversation(ctx context.Context, req *dto.AIChatRequest, answer string, now time.Time) {
	conversation, err := s.conversationRepo.FindByProject(ctx, req.ProjectID)
	if err != nil {
		s.logger.Warn("Failed to load conversation log", zap.Error(err))
		return
	}

	var messages []dto.ConversationMessage
	if conversation == nil {
		conversation = &domain.AIConversation{
			BaseModel: domain.BaseModel{ID: uuid.New()},
			ProjectID: req.ProjectID,
		}
	} else if len(conversation.Messages) > 0 {
		if err := json.Unmarshal(conversation.Messages, &messages); err != nil {
			s.logger.Warn("Conversation log is corrupt, starting over",
				zap.String("project_id", req.ProjectID.String()),
				zap.Error(err),
			)
			messages = nil
		}
	}

	messages = append(messages,
		dto.ConversationMessage{Role: "user", Content: req.Message, Timestamp: now},
		dto.ConversationMessage{Role: "assistant", Content: answer, Timestamp: now},
	)

	encoded, err := json.Marshal(messages)
	if err != nil {
		s.logger.Warn("Failed to encode conversation log", zap.Error(err))
		return
	}
	conversation.Messages = datatypes.JSON(encoded)

	if err := s.conversationRepo.Upsert(ctx, conversation); err != nil {
		s.logger.Warn("Failed to persist conversation log",
			zap.String("project_id", req.ProjectID.String()),
			zap.Error(err),
		)
	}
}
