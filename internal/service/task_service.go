package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/lock"
	"app-submission-api/internal/metrics"
	"app-submission-api/internal/repository"
	"app-submission-api/internal/response"
	"app-submission-api/internal/template"
)

const generateLockTTL = 30 * time.Second

// TaskService defines the interface for task business logic
type TaskService interface {
	GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error)
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTasks(ctx context.Context, projectID *uuid.UUID) ([]dto.TaskResponse, error)
	GetTasksGrouped(ctx context.Context, projectID uuid.UUID, filter repository.TaskFilter) ([]dto.PhaseGroupResponse, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	SetTaskCompletion(ctx context.Context, taskID uuid.UUID, completed bool) (*dto.TaskResponse, error)
	SetTaskMemo(ctx context.Context, taskID uuid.UUID, memo string) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	locker      lock.Locker
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService.
// locker may be nil; generation then runs unguarded.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, locker lock.Locker, m *metrics.Metrics, logger *zap.Logger) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		locker:      locker,
		metrics:     m,
		logger:      logger,
	}
}

// GenerateDefaults replaces a project's template-generated tasks with a fresh
// expansion of the catalog. User-created tasks are never touched, so the
// operation is idempotent: running it twice leaves the same default set.
func (s *taskServiceImpl) GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error) {
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
		release, acquired, err := s.locker.TryAcquire(ctx, "generate:tasks:"+projectID.String(), generateLockTTL)
		if err != nil {
			// Redis being down must not block generation
			s.logger.Warn("Lock acquisition failed, generating unguarded",
				zap.String("project_id", projectID.String()),
				zap.Error(err),
			)
		} else if !acquired {
			return 0, response.NewAppError(response.ErrCodeAlreadyExists, "Default task generation already in progress", "")
		} else {
			defer release()
		}
	}

	removed, err := s.taskRepo.DeleteDefaultsByProject(ctx, projectID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to clear default tasks", err.Error())
	}

	templates := template.TasksForPlatform(platform)
	tasks := make([]domain.Task, 0, len(templates))
	for _, tmpl := range templates {
		phaseNumber := tmpl.PhaseNumber
		tasks = append(tasks, domain.Task{
			BaseModel:        domain.BaseModel{ID: uuid.New()},
			ProjectID:        projectID,
			Title:            tmpl.Title,
			Description:      tmpl.Description,
			Phase:            tmpl.PhaseName,
			PhaseNumber:      &phaseNumber,
			StepNumber:       tmpl.StepNumber,
			Status:           domain.TaskStatusPending,
			Completed:        false,
			Priority:         domain.TaskPriority(tmpl.Priority),
			Order:            tmpl.Order,
			EstimatedDays:    tmpl.EstimatedDays,
			AssignedTo:       tmpl.AssignedTo,
			PlatformSpecific: tmpl.PlatformSpecific,
			IsDefault:        true,
		})
	}

	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to create default tasks", err.Error())
	}

	if s.metrics != nil {
		s.metrics.AddTasksGenerated(len(tasks))
	}
	s.logger.Info("Default tasks generated",
		zap.String("project_id", projectID.String()),
		zap.String("platform", string(platform)),
		zap.Int64("removed", removed),
		zap.Int("created", len(tasks)),
	)
	return len(tasks), nil
}

// CreateTask creates a user task
func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	task := &domain.Task{
		BaseModel:        domain.BaseModel{ID: uuid.New()},
		ProjectID:        req.ProjectID,
		Title:            req.Title,
		Description:      req.Description,
		Phase:            req.Phase,
		PhaseNumber:      req.PhaseNumber,
		StepNumber:       req.StepNumber,
		Status:           domain.TaskStatusPending,
		DueDate:          req.DueDate,
		Priority:         priority,
		Order:            req.Order,
		EstimatedDays:    req.EstimatedDays,
		AssignedTo:       req.AssignedTo,
		PlatformSpecific: req.PlatformSpecific,
		IsDefault:        false,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// GetTasks returns tasks, optionally scoped to a project
func (s *taskServiceImpl) GetTasks(ctx context.Context, projectID *uuid.UUID) ([]dto.TaskResponse, error) {
	var (
		tasks []domain.Task
		err   error
	)
	if projectID != nil {
		tasks, err = s.taskRepo.FindByProject(ctx, *projectID, repository.TaskFilter{})
	} else {
		tasks, err = s.taskRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}
	return dto.ToTaskResponses(tasks), nil
}

// GetTasksGrouped returns the project's tasks bucketed by phase. Buckets keep
// the order in which phases first appear in the (phase_number, order) sorted
// stream; tasks without a phase number land in bucket 0 "Unknown".
func (s *taskServiceImpl) GetTasksGrouped(ctx context.Context, projectID uuid.UUID, filter repository.TaskFilter) ([]dto.PhaseGroupResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	tasks, err := s.taskRepo.FindByProject(ctx, projectID, filter)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}

	groups := make([]dto.PhaseGroupResponse, 0)
	indexByPhase := make(map[int]int)

	for i := range tasks {
		task := &tasks[i]
		phaseNumber := 0
		if task.PhaseNumber != nil {
			phaseNumber = *task.PhaseNumber
		}

		idx, ok := indexByPhase[phaseNumber]
		if !ok {
			// the bucket keeps the first member's stored phase name;
			// renaming a catalog phase must not rewrite existing rows
			phaseName := task.Phase
			if phaseNumber == 0 {
				phaseName = "Unknown"
			}
			groups = append(groups, dto.PhaseGroupResponse{
				PhaseNumber: phaseNumber,
				PhaseName:   phaseName,
				Tasks:       []dto.TaskResponse{},
			})
			idx = len(groups) - 1
			indexByPhase[phaseNumber] = idx
		}
		groups[idx].Tasks = append(groups[idx].Tasks, dto.ToTaskResponse(task))
	}

	return groups, nil
}

// UpdateTask applies the non-nil fields of the request. Setting status to
// completed stamps completed_at, matching the behavior clients already rely
// on; the completed flag itself only changes when the request carries it.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Phase != nil {
		task.Phase = *req.Phase
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
		if task.Status == domain.TaskStatusCompleted {
			now := time.Now().UTC()
			task.CompletedAt = &now
		}
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Memo != nil {
		task.Memo = *req.Memo
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// SetTaskCompletion toggles a task fully: status, completed flag and
// completed_at stay in sync in both directions.
func (s *taskServiceImpl) SetTaskCompletion(ctx context.Context, taskID uuid.UUID, completed bool) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = completed
	if completed {
		task.Status = domain.TaskStatusCompleted
		now := time.Now().UTC()
		task.CompletedAt = &now
	} else {
		task.Status = domain.TaskStatusPending
		task.CompletedAt = nil
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// SetTaskMemo replaces a task's memo
func (s *taskServiceImpl) SetTaskMemo(ctx context.Context, taskID uuid.UUID, memo string) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Memo = memo
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	resp := dto.ToTaskResponse(task)
	return &resp, nil
}

// DeleteTask removes a task
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Task not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}
	return nil
}

func (s *taskServiceImpl) findTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	return task, nil
}
