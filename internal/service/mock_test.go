package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"app-submission-api/internal/domain"
	"app-submission-api/internal/repository"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc   func(ctx context.Context, project *domain.Project) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Project, error)
	UpdateFunc   func(ctx context.Context, project *domain.Project) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc                  func(ctx context.Context, task *domain.Task) error
	CreateBatchFunc             func(ctx context.Context, tasks []domain.Task) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByProjectFunc           func(ctx context.Context, projectID uuid.UUID, filter repository.TaskFilter) ([]domain.Task, error)
	FindAllFunc                 func(ctx context.Context) ([]domain.Task, error)
	UpdateFunc                  func(ctx context.Context, task *domain.Task) error
	DeleteFunc                  func(ctx context.Context, id uuid.UUID) error
	DeleteDefaultsByProjectFunc func(ctx context.Context, projectID uuid.UUID) (int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) CreateBatch(ctx context.Context, tasks []domain.Task) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tasks)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter repository.TaskFilter) ([]domain.Task, error) {
	if m.FindByProjectFunc != nil {
		return m.FindByProjectFunc(ctx, projectID, filter)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) DeleteDefaultsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.DeleteDefaultsByProjectFunc != nil {
		return m.DeleteDefaultsByProjectFunc(ctx, projectID)
	}
	return 0, nil
}

// MockChecklistRepository is a mock implementation of ChecklistRepository
type MockChecklistRepository struct {
	CreateFunc                  func(ctx context.Context, item *domain.ChecklistItem) error
	CreateBatchFunc             func(ctx context.Context, items []domain.ChecklistItem) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.ChecklistItem, error)
	FindFunc                    func(ctx context.Context, filter repository.ChecklistFilter) ([]domain.ChecklistItem, error)
	UpdateFunc                  func(ctx context.Context, item *domain.ChecklistItem) error
	DeleteFunc                  func(ctx context.Context, id uuid.UUID) error
	DeleteDefaultsByProjectFunc func(ctx context.Context, projectID uuid.UUID) (int64, error)
	AddFileFunc                 func(ctx context.Context, file *domain.ChecklistFile) error
	FindFileFunc                func(ctx context.Context, itemID uuid.UUID, fileName string) (*domain.ChecklistFile, error)
	DeleteFileFunc              func(ctx context.Context, fileID uuid.UUID) error
	FindOrphanFilesFunc         func(ctx context.Context) ([]domain.ChecklistFile, error)
}

func (m *MockChecklistRepository) Create(ctx context.Context, item *domain.ChecklistItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockChecklistRepository) CreateBatch(ctx context.Context, items []domain.ChecklistItem) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, items)
	}
	return nil
}

func (m *MockChecklistRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ChecklistItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockChecklistRepository) Find(ctx context.Context, filter repository.ChecklistFilter) ([]domain.ChecklistItem, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockChecklistRepository) Update(ctx context.Context, item *domain.ChecklistItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *MockChecklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockChecklistRepository) DeleteDefaultsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.DeleteDefaultsByProjectFunc != nil {
		return m.DeleteDefaultsByProjectFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *MockChecklistRepository) AddFile(ctx context.Context, file *domain.ChecklistFile) error {
	if m.AddFileFunc != nil {
		return m.AddFileFunc(ctx, file)
	}
	return nil
}

func (m *MockChecklistRepository) FindFile(ctx context.Context, itemID uuid.UUID, fileName string) (*domain.ChecklistFile, error) {
	if m.FindFileFunc != nil {
		return m.FindFileFunc(ctx, itemID, fileName)
	}
	return nil, nil
}

func (m *MockChecklistRepository) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, fileID)
	}
	return nil
}

func (m *MockChecklistRepository) FindOrphanFiles(ctx context.Context) ([]domain.ChecklistFile, error) {
	if m.FindOrphanFilesFunc != nil {
		return m.FindOrphanFilesFunc(ctx)
	}
	return nil, nil
}

// MockRejectionRepository is a mock implementation of RejectionRepository
type MockRejectionRepository struct {
	CreateFunc   func(ctx context.Context, rejection *domain.Rejection) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Rejection, error)
	FindFunc     func(ctx context.Context, projectID *uuid.UUID) ([]domain.Rejection, error)
	UpdateFunc   func(ctx context.Context, rejection *domain.Rejection) error
}

func (m *MockRejectionRepository) Create(ctx context.Context, rejection *domain.Rejection) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rejection)
	}
	return nil
}

func (m *MockRejectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Rejection, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRejectionRepository) Find(ctx context.Context, projectID *uuid.UUID) ([]domain.Rejection, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockRejectionRepository) Update(ctx context.Context, rejection *domain.Rejection) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rejection)
	}
	return nil
}

// MockConversationRepository is a mock implementation of ConversationRepository
type MockConversationRepository struct {
	FindByProjectFunc func(ctx context.Context, projectID uuid.UUID) (*domain.AIConversation, error)
	UpsertFunc        func(ctx context.Context, conversation *domain.AIConversation) error
}

func (m *MockConversationRepository) FindByProject(ctx context.Context, projectID uuid.UUID) (*domain.AIConversation, error) {
	if m.FindByProjectFunc != nil {
		return m.FindByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockConversationRepository) Upsert(ctx context.Context, conversation *domain.AIConversation) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, conversation)
	}
	return nil
}

// MockAIClient is a mock implementation of client.AIClientInterface
type MockAIClient struct {
	AnalyzeRejectionFunc func(ctx context.Context, platform, reason string) (string, string, error)
	ChatFunc             func(ctx context.Context, message string) (string, error)
}

func (m *MockAIClient) AnalyzeRejection(ctx context.Context, platform, reason string) (string, string, error) {
	if m.AnalyzeRejectionFunc != nil {
		return m.AnalyzeRejectionFunc(ctx, platform, reason)
	}
	return "", "", nil
}

func (m *MockAIClient) Chat(ctx context.Context, message string) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, message)
	}
	return "", nil
}

// MockS3Client is a mock implementation of client.S3ClientInterface
type MockS3Client struct {
	GenerateFileKeyFunc      func(projectID, fileName string) string
	GeneratePresignedURLFunc func(ctx context.Context, key, contentType string) (string, error)
	UploadFileFunc           func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc           func(ctx context.Context, key string) error
	GetFileURLFunc           func(key string) string
}

func (m *MockS3Client) GenerateFileKey(projectID, fileName string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(projectID, fileName)
	}
	return "checklist/" + projectID + "/" + fileName
}

func (m *MockS3Client) GeneratePresignedURL(ctx context.Context, key, contentType string) (string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, key, contentType)
	}
	return "https://example.com/" + key, nil
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return "https://example.com/" + key, nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://example.com/" + key
}

// MockLocker is a mock implementation of lock.Locker
type MockLocker struct {
	TryAcquireFunc func(ctx context.Context, key string, ttl time.Duration) (func(), bool, error)
}

func (m *MockLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	if m.TryAcquireFunc != nil {
		return m.TryAcquireFunc(ctx, key, ttl)
	}
	return func() {}, true, nil
}
