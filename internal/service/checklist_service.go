package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-submission-api/internal/client"
	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/lock"
	"app-submission-api/internal/metrics"
	"app-submission-api/internal/repository"
	"app-submission-api/internal/response"
	"app-submission-api/internal/template"
)

// ChecklistService defines the interface for checklist business logic
type ChecklistService interface {
	GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error)
	CreateItem(ctx context.Context, req *dto.CreateChecklistItemRequest) (*dto.ChecklistItemResponse, error)
	GetItems(ctx context.Context, projectID *uuid.UUID, platform *domain.Platform) ([]dto.ChecklistItemResponse, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	UploadFile(ctx context.Context, itemID uuid.UUID, originalName, contentType string, size int64, content io.Reader) (*dto.ChecklistItemResponse, error)
	DeleteFile(ctx context.Context, itemID uuid.UUID, fileName string) error
}

// checklistServiceImpl is the implementation of ChecklistService
type checklistServiceImpl struct {
	checklistRepo repository.ChecklistRepository
	projectRepo   repository.ProjectRepository
	s3Client      client.S3ClientInterface
	locker        lock.Locker
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewChecklistService creates a new instance of ChecklistService.
// s3Client may be nil; uploads are then rejected but everything else works.
// locker may be nil; generation then runs unguarded.
func NewChecklistService(checklistRepo repository.ChecklistRepository, projectRepo repository.ProjectRepository, s3Client client.S3ClientInterface, locker lock.Locker, m *metrics.Metrics, logger *zap.Logger) ChecklistService {
	return &checklistServiceImpl{
		checklistRepo: checklistRepo,
		projectRepo:   projectRepo,
		s3Client:      s3Client,
		locker:        locker,
		metrics:       m,
		logger:        logger,
	}
}

// GenerateDefaults replaces a project's template-generated checklist items
// with a fresh expansion for the project's platform.
func (s *checklistServiceImpl) GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NewNotFoundError("Project not found", "")
		}
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	platform := project.Platform
	if platformOverride != nil {
		if !platformOverride.Valid() {
			return 0, response.NewValidationError("platform must be one of: iOS, Android, Both", "")
		}
		platform = *platformOverride
	}

	if s.locker != nil {
		release, acquired, err := s.locker.TryAcquire(ctx, "generate:checklist:"+projectID.String(), generateLockTTL)
		if err != nil {
			// Redis being down must not block generation
			s.logger.Warn("Lock acquisition failed, generating unguarded",
				zap.String("project_id", projectID.String()),
				zap.Error(err),
			)
		} else if !acquired {
			return 0, response.NewAppError(response.ErrCodeAlreadyExists, "Default checklist generation already in progress", "")
		} else {
			defer release()
		}
	}

	removed, err := s.checklistRepo.DeleteDefaultsByProject(ctx, projectID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to clear default checklist", err.Error())
	}

	templates := template.ChecklistForPlatform(platform)
	items := make([]domain.ChecklistItem, 0, len(templates))
	for _, tmpl := range templates {
		items = append(items, domain.ChecklistItem{
			BaseModel:   domain.BaseModel{ID: uuid.New()},
			ProjectID:   projectID,
			Platform:    tmpl.Platform,
			Category:    tmpl.Category,
			ItemName:    tmpl.Title,
			Description: tmpl.Description,
			Status:      domain.ChecklistStatusIncomplete,
			Order:       tmpl.Order,
			IsDefault:   true,
		})
	}

	if err := s.checklistRepo.CreateBatch(ctx, items); err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to create default checklist", err.Error())
	}

	if s.metrics != nil {
		s.metrics.AddChecklistGenerated(len(items))
	}
	s.logger.Info("Default checklist generated",
		zap.String("project_id", projectID.String()),
		zap.String("platform", string(platform)),
		zap.Int64("removed", removed),
		zap.Int("created", len(items)),
	)
	return len(items), nil
}

// CreateItem creates a user checklist item
func (s *checklistServiceImpl) CreateItem(ctx context.Context, req *dto.CreateChecklistItemRequest) (*dto.ChecklistItemResponse, error) {
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

	item := &domain.ChecklistItem{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		ProjectID:   req.ProjectID,
		Platform:    platform,
		Category:    req.Category,
		ItemName:    req.ItemName,
		Description: req.Description,
		Status:      domain.ChecklistStatusIncomplete,
		Order:       req.Order,
		IsDefault:   false,
	}

	if err := s.checklistRepo.Create(ctx, item); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create checklist item", err.Error())
	}

	resp := dto.ToChecklistItemResponse(item, s.fileURLResolver())
	return &resp, nil
}

// GetItems returns checklist items, optionally filtered by project and platform
func (s *checklistServiceImpl) GetItems(ctx context.Context, projectID *uuid.UUID, platform *domain.Platform) ([]dto.ChecklistItemResponse, error) {
	if platform != nil && !platform.Valid() {
		return nil, response.NewValidationError("platform must be one of: iOS, Android, Both", "")
	}

	items, err := s.checklistRepo.Find(ctx, repository.ChecklistFilter{
		ProjectID: projectID,
		Platform:  platform,
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list checklist items", err.Error())
	}
	return dto.ToChecklistItemResponses(items, s.fileURLResolver()), nil
}

// UpdateItem applies the non-nil fields of the request
func (s *checklistServiceImpl) UpdateItem(ctx context.Context, itemID uuid.UUID, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		item.Status = domain.ChecklistStatus(*req.Status)
	}
	if req.Value != nil {
		item.Value = *req.Value
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := s.checklistRepo.Update(ctx, item); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update checklist item", err.Error())
	}

	resp := dto.ToChecklistItemResponse(item, s.fileURLResolver())
	return &resp, nil
}

// DeleteItem removes a checklist item, its file rows and their blobs
func (s *checklistServiceImpl) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.checklistRepo.Delete(ctx, itemID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete checklist item", err.Error())
	}

	// Blob deletion is best-effort; the cleanup job picks up leftovers.
	if s.s3Client != nil {
		for i := range item.Files {
			if err := s.s3Client.DeleteFile(ctx, item.Files[i].FileKey); err != nil {
				s.logger.Warn("Failed to delete checklist file from storage",
					zap.String("file_key", item.Files[i].FileKey),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// UploadFile stores a blob for a checklist item and records its metadata
func (s *checklistServiceImpl) UploadFile(ctx context.Context, itemID uuid.UUID, originalName, contentType string, size int64, content io.Reader) (*dto.ChecklistItemResponse, error) {
	if s.s3Client == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "File storage is not configured", "")
	}

	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	key := s.s3Client.GenerateFileKey(item.ProjectID.String(), originalName)
	if _, err := s.s3Client.UploadFile(ctx, key, content, contentType); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload file", err.Error())
	}

	file := &domain.ChecklistFile{
		ID:              uuid.New(),
		ChecklistItemID: item.ID,
		FileName:        filepath.Base(key),
		OriginalName:    originalName,
		FileKey:         key,
		FileSize:        size,
		ContentType:     contentType,
		UploadedAt:      time.Now().UTC(),
	}
	if err := s.checklistRepo.AddFile(ctx, file); err != nil {
		// Roll the blob back so storage does not accumulate unreferenced files
		if delErr := s.s3Client.DeleteFile(ctx, key); delErr != nil {
			s.logger.Warn("Failed to roll back uploaded file", zap.String("file_key", key), zap.Error(delErr))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record uploaded file", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementFilesUploaded()
	}

	updated, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToChecklistItemResponse(updated, s.fileURLResolver())
	return &resp, nil
}

// DeleteFile removes one uploaded file from an item
func (s *checklistServiceImpl) DeleteFile(ctx context.Context, itemID uuid.UUID, fileName string) error {
	file, err := s.checklistRepo.FindFile(ctx, itemID, fileName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("File not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load file", err.Error())
	}

	if err := s.checklistRepo.DeleteFile(ctx, file.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete file", err.Error())
	}

	if s.s3Client != nil {
		if err := s.s3Client.DeleteFile(ctx, file.FileKey); err != nil {
			s.logger.Warn("Failed to delete file from storage",
				zap.String("file_key", file.FileKey),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *checklistServiceImpl) findItem(ctx context.Context, itemID uuid.UUID) (*domain.ChecklistItem, error) {
	item, err := s.checklistRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Checklist item not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load checklist item", err.Error())
	}
	return item, nil
}

func (s *checklistServiceImpl) fileURLResolver() dto.FileURLResolver {
	if s.s3Client == nil {
		return nil
	}
	return s.s3Client.GetFileURL
}
