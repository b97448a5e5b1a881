package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/repository"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	CreateProjectFunc  func(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjectsFunc    func(ctx context.Context) ([]dto.ProjectResponse, error)
	GetProjectFunc     func(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error)
	UpdateProjectFunc  func(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	UpdateScheduleFunc func(ctx context.Context, projectID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ProjectResponse, error)
	DeleteProjectFunc  func(ctx context.Context, projectID uuid.UUID) error
}

func (m *MockProjectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req)
	}
	return &dto.ProjectResponse{}, nil
}

func (m *MockProjectService) GetProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	if m.GetProjectsFunc != nil {
		return m.GetProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID)
	}
	return &dto.ProjectResponse{ID: projectID}, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, projectID, req)
	}
	return &dto.ProjectResponse{ID: projectID}, nil
}

func (m *MockProjectService) UpdateSchedule(ctx context.Context, projectID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ProjectResponse, error) {
	if m.UpdateScheduleFunc != nil {
		return m.UpdateScheduleFunc(ctx, projectID, req)
	}
	return &dto.ProjectResponse{ID: projectID}, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID)
	}
	return nil
}

// MockTaskService is a mock implementation of service.TaskService
type MockTaskService struct {
	GenerateDefaultsFunc  func(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error)
	CreateTaskFunc        func(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTasksFunc          func(ctx context.Context, projectID *uuid.UUID) ([]dto.TaskResponse, error)
	GetTasksGroupedFunc   func(ctx context.Context, projectID uuid.UUID, filter repository.TaskFilter) ([]dto.PhaseGroupResponse, error)
	UpdateTaskFunc        func(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	SetTaskCompletionFunc func(ctx context.Context, taskID uuid.UUID, completed bool) (*dto.TaskResponse, error)
	SetTaskMemoFunc       func(ctx context.Context, taskID uuid.UUID, memo string) (*dto.TaskResponse, error)
	DeleteTaskFunc        func(ctx context.Context, taskID uuid.UUID) error
}

func (m *MockTaskService) GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error) {
	if m.GenerateDefaultsFunc != nil {
		return m.GenerateDefaultsFunc(ctx, projectID, platformOverride)
	}
	return 0, nil
}

func (m *MockTaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, req)
	}
	return &dto.TaskResponse{}, nil
}

func (m *MockTaskService) GetTasks(ctx context.Context, projectID *uuid.UUID) ([]dto.TaskResponse, error) {
	if m.GetTasksFunc != nil {
		return m.GetTasksFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskService) GetTasksGrouped(ctx context.Context, projectID uuid.UUID, filter repository.TaskFilter) ([]dto.PhaseGroupResponse, error) {
	if m.GetTasksGroupedFunc != nil {
		return m.GetTasksGroupedFunc(ctx, projectID, filter)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, taskID, req)
	}
	return &dto.TaskResponse{ID: taskID}, nil
}

func (m *MockTaskService) SetTaskCompletion(ctx context.Context, taskID uuid.UUID, completed bool) (*dto.TaskResponse, error) {
	if m.SetTaskCompletionFunc != nil {
		return m.SetTaskCompletionFunc(ctx, taskID, completed)
	}
	return &dto.TaskResponse{ID: taskID, Completed: completed}, nil
}

func (m *MockTaskService) SetTaskMemo(ctx context.Context, taskID uuid.UUID, memo string) (*dto.TaskResponse, error) {
	if m.SetTaskMemoFunc != nil {
		return m.SetTaskMemoFunc(ctx, taskID, memo)
	}
	return &dto.TaskResponse{ID: taskID, Memo: memo}, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, taskID)
	}
	return nil
}

// MockChecklistService is a mock implementation of service.ChecklistService
type MockChecklistService struct {
	GenerateDefaultsFunc func(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error)
	CreateItemFunc       func(ctx context.Context, req *dto.CreateChecklistItemRequest) (*dto.ChecklistItemResponse, error)
	GetItemsFunc         func(ctx context.Context, projectID *uuid.UUID, platform *domain.Platform) ([]dto.ChecklistItemResponse, error)
	UpdateItemFunc       func(ctx context.Context, itemID uuid.UUID, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error)
	DeleteItemFunc       func(ctx context.Context, itemID uuid.UUID) error
	UploadFileFunc       func(ctx context.Context, itemID uuid.UUID, originalName, contentType string, size int64, content io.Reader) (*dto.ChecklistItemResponse, error)
	DeleteFileFunc       func(ctx context.Context, itemID uuid.UUID, fileName string) error
}

func (m *MockChecklistService) GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error) {
	if m.GenerateDefaultsFunc != nil {
		return m.GenerateDefaultsFunc(ctx, projectID, platformOverride)
	}
	return 0, nil
}

func (m *MockChecklistService) CreateItem(ctx context.Context, req *dto.CreateChecklistItemRequest) (*dto.ChecklistItemResponse, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, req)
	}
	return &dto.ChecklistItemResponse{}, nil
}

func (m *MockChecklistService) GetItems(ctx context.Context, projectID *uuid.UUID, platform *domain.Platform) ([]dto.ChecklistItemResponse, error) {
	if m.GetItemsFunc != nil {
		return m.GetItemsFunc(ctx, projectID, platform)
	}
	return nil, nil
}

func (m *MockChecklistService) UpdateItem(ctx context.Context, itemID uuid.UUID, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, itemID, req)
	}
	return &dto.ChecklistItemResponse{ID: itemID}, nil
}

func (m *MockChecklistService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, itemID)
	}
	return nil
}

func (m *MockChecklistService) UploadFile(ctx context.Context, itemID uuid.UUID, originalName, contentType string, size int64, content io.Reader) (*dto.ChecklistItemResponse, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, itemID, originalName, contentType, size, content)
	}
	return &dto.ChecklistItemResponse{ID: itemID}, nil
}

func (m *MockChecklistService) DeleteFile(ctx context.Context, itemID uuid.UUID, fileName string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, itemID, fileName)
	}
	return nil
}

// MockRejectionService is a mock implementation of service.RejectionService
type MockRejectionService struct {
	CreateRejectionFunc func(ctx context.Context, req *dto.CreateRejectionRequest) (*dto.RejectionResponse, error)
	GetRejectionsFunc   func(ctx context.Context, projectID *uuid.UUID) ([]dto.RejectionResponse, error)
	UpdateRejectionFunc func(ctx context.Context, rejectionID uuid.UUID, req *dto.UpdateRejectionRequest) (*dto.RejectionResponse, error)
}

func (m *MockRejectionService) CreateRejection(ctx context.Context, req *dto.CreateRejectionRequest) (*dto.RejectionResponse, error) {
	if m.CreateRejectionFunc != nil {
		return m.CreateRejectionFunc(ctx, req)
	}
	return &dto.RejectionResponse{}, nil
}

func (m *MockRejectionService) GetRejections(ctx context.Context, projectID *uuid.UUID) ([]dto.RejectionResponse, error) {
	if m.GetRejectionsFunc != nil {
		return m.GetRejectionsFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockRejectionService) UpdateRejection(ctx context.Context, rejectionID uuid.UUID, req *dto.UpdateRejectionRequest) (*dto.RejectionResponse, error) {
	if m.UpdateRejectionFunc != nil {
		return m.UpdateRejectionFunc(ctx, rejectionID, req)
	}
	return &dto.RejectionResponse{ID: rejectionID}, nil
}

// MockAIService is a mock implementation of service.AIService
type MockAIService struct {
	ChatFunc             func(ctx context.Context, req *dto.AIChatRequest) (*dto.AIChatResponse, error)
	AnalyzeRejectionFunc func(ctx context.Context, req *dto.AIAnalysisRequest) (*dto.AIAnalysisResponse, error)
}

func (m *MockAIService) Chat(ctx context.Context, req *dto.AIChatRequest) (*dto.AIChatResponse, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	return &dto.AIChatResponse{}, nil
}

func (m *MockAIService) AnalyzeRejection(ctx context.Context, req *dto.AIAnalysisRequest) (*dto.AIAnalysisResponse, error) {
	if m.AnalyzeRejectionFunc != nil {
		return m.AnalyzeRejectionFunc(ctx, req)
	}
	return &dto.AIAnalysisResponse{}, nil
}
