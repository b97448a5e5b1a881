package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/metrics"
	"app-submission-api/internal/repository"
	"app-submission-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjects(ctx context.Context) ([]dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	UpdateSchedule(ctx context.Context, projectID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}

// DefaultsGenerator materializes template defaults for a project.
// Implemented by TaskService and ChecklistService.
type DefaultsGenerator interface {
	GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error)
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo        repository.ProjectRepository
	taskGenerator      DefaultsGenerator
	checklistGenerator DefaultsGenerator
	metrics            *metrics.Metrics
	logger             *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, taskGenerator, checklistGenerator DefaultsGenerator, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo:        projectRepo,
		taskGenerator:      taskGenerator,
		checklistGenerator: checklistGenerator,
		metrics:            m,
		logger:             logger,
	}
}

// CreateProject creates a new submission project, materializing the default
// tasks and checklist unless the request opts out.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	platform := domain.Platform(req.Platform)
	if !platform.Valid() {
		return nil, response.NewValidationError("platform must be one of: iOS, Android, Both", "")
	}
	if err := validateScheduleRange(req.StartDate, req.PublishDate); err != nil {
		return nil, err
	}

	project := &domain.Project{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Name:        req.Name,
		Platform:    platform,
		Description: req.Description,
		Status:      domain.ProjectStatusActive,
		StartDate:   req.StartDate,
		PublishDate: req.PublishDate,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}

	if req.ShouldGenerateTasks() {
		if _, err := s.taskGenerator.GenerateDefaults(ctx, project.ID, nil); err != nil {
			// The project itself exists; templates can be regenerated later.
			s.logger.Error("Failed to generate default tasks on project creation",
				zap.String("project_id", project.ID.String()),
				zap.Error(err),
			)
		}
		if _, err := s.checklistGenerator.GenerateDefaults(ctx, project.ID, nil); err != nil {
			s.logger.Error("Failed to generate default checklist on project creation",
				zap.String("project_id", project.ID.String()),
				zap.Error(err),
			)
		}
	}

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// GetProjects returns all projects
func (s *projectServiceImpl) GetProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}
	return dto.ToProjectResponses(projects), nil
}

// GetProject returns a project by ID
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// UpdateProject applies the non-nil fields of the request
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Platform != nil {
		platform := domain.Platform(*req.Platform)
		if !platform.Valid() {
			return nil, response.NewValidationError("platform must be one of: iOS, Android, Both", "")
		}
		project.Platform = platform
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = domain.ProjectStatus(*req.Status)
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.PublishDate != nil {
		project.PublishDate = req.PublishDate
	}

	if err := validateScheduleRange(project.StartDate, project.PublishDate); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// UpdateSchedule patches start and publish dates
func (s *projectServiceImpl) UpdateSchedule(ctx context.Context, projectID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ProjectResponse, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.PublishDate != nil {
		project.PublishDate = req.PublishDate
	}

	if err := validateScheduleRange(project.StartDate, project.PublishDate); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update schedule", err.Error())
	}

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// DeleteProject removes a project and all of its child records
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}

	s.logger.Info("Project deleted", zap.String("project_id", projectID.String()))
	return nil
}

func (s *projectServiceImpl) findProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}
	return project, nil
}
