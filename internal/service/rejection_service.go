package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-submission-api/internal/client"
	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/repository"
	"app-submission-api/internal/response"
)

// RejectionService defines the interface for rejection business logic
type RejectionService interface {
	CreateRejection(ctx context.Context, req *dto.CreateRejectionRequest) (*dto.RejectionResponse, error)
	GetRejections(ctx context.Context, projectID *uuid.UUID) ([]dto.RejectionResponse, error)
	UpdateRejection(ctx context.Context, rejectionID uuid.UUID, req *dto.UpdateRejectionRequest) (*dto.RejectionResponse, error)
}

// rejectionServiceImpl is the implementation of RejectionService
type rejectionServiceImpl struct {
	rejectionRepo repository.RejectionRepository
	projectRepo   repository.ProjectRepository
	aiClient      client.AIClientInterface
	logger        *zap.Logger
}

// NewRejectionService creates a new instance of RejectionService.
// aiClient may be nil; rejections are then stored without analysis.
func NewRejectionService(rejectionRepo repository.RejectionRepository, projectRepo repository.ProjectRepository, aiClient client.AIClientInterface, logger *zap.Logger) RejectionService {
	return &rejectionServiceImpl{
		rejectionRepo: rejectionRepo,
		projectRepo:   projectRepo,
		aiClient:      aiClient,
		logger:        logger,
	}
}

// CreateRejection records a store rejection. The AI analysis and action plan
// are filled in synchronously when the model answers; a model failure never
// fails the creation.
func (s *rejectionServiceImpl) CreateRejection(ctx context.Context, req *dto.CreateRejectionRequest) (*dto.RejectionResponse, error) {
	platform := domain.Platform(req.Platform)
	if !platform.Valid() {
		return nil, response.NewValidationError("platform must be one of: iOS, Android, Both", "")
	}
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	rejectionDate := time.Now().UTC()
	if req.RejectionDate != nil {
		rejectionDate = *req.RejectionDate
	}

	rejection := &domain.Rejection{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		ProjectID:     req.ProjectID,
		Platform:      platform,
		RejectionDate: rejectionDate,
		Reason:        req.Reason,
		Status:        domain.RejectionStatusOpen,
	}

	if s.aiClient != nil {
		analysis, actionPlan, err := s.aiClient.AnalyzeRejection(ctx, req.Platform, req.Reason)
		if err != nil {
			s.logger.Error("Failed to generate AI analysis for rejection",
				zap.String("project_id", req.ProjectID.String()),
				zap.Error(err),
			)
		} else {
			rejection.AIAnalysis = &analysis
			rejection.ActionPlan = &actionPlan
		}
	}

	if err := s.rejectionRepo.Create(ctx, rejection); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create rejection", err.Error())
	}

	resp := dto.ToRejectionResponse(rejection)
	return &resp, nil
}

// GetRejections returns rejections, optionally scoped to a project
func (s *rejectionServiceImpl) GetRejections(ctx context.Context, projectID *uuid.UUID) ([]dto.RejectionResponse, error) {
	rejections, err := s.rejectionRepo.Find(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list rejections", err.Error())
	}
	return dto.ToRejectionResponses(rejections), nil
}

// UpdateRejection applies the non-nil fields of the request
func (s *rejectionServiceImpl) UpdateRejection(ctx context.Context, rejectionID uuid.UUID, req *dto.UpdateRejectionRequest) (*dto.RejectionResponse, error) {
	rejection, err := s.rejectionRepo.FindByID(ctx, rejectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Rejection not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load rejection", err.Error())
	}

	if req.Status != nil {
		rejection.Status = domain.RejectionStatus(*req.Status)
	}
	if req.ActionPlan != nil {
		rejection.ActionPlan = req.ActionPlan
	}

	if err := s.rejectionRepo.Update(ctx, rejection); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update rejection", err.Error())
	}

	resp := dto.ToRejectionResponse(rejection)
	return &resp, nil
}
