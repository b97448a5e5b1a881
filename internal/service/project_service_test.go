package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/response"
)

// mockGenerator counts GenerateDefaults calls
type mockGenerator struct {
	calls int
	err   error
}

func (m *mockGenerator) GenerateDefaults(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error) {
	m.calls++
	return 0, m.err
}

func newProjectService(repo *MockProjectRepository, taskGen, checklistGen *mockGenerator) ProjectService {
	return NewProjectService(repo, taskGen, checklistGen, nil, zap.NewNop())
}

func TestCreateProject_GeneratesDefaults(t *testing.T) {
	repo := &MockProjectRepository{
		CreateFunc: func(ctx context.Context, project *domain.Project) error {
			project.ID = uuid.New()
			return nil
		},
	}
	taskGen := &mockGenerator{}
	checklistGen := &mockGenerator{}
	svc := newProjectService(repo, taskGen, checklistGen)

	resp, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Name:     "MyApp",
		Platform: "iOS",
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if resp.Status != string(domain.ProjectStatusActive) {
		t.Errorf("expected new project to be active, got %q", resp.Status)
	}
	if taskGen.calls != 1 || checklistGen.calls != 1 {
		t.Errorf("expected one generation call each, got tasks=%d checklist=%d", taskGen.calls, checklistGen.calls)
	}
}

func TestCreateProject_OptOutSkipsGeneration(t *testing.T) {
	repo := &MockProjectRepository{
		CreateFunc: func(ctx context.Context, project *domain.Project) error {
			project.ID = uuid.New()
			return nil
		},
	}
	taskGen := &mockGenerator{}
	checklistGen := &mockGenerator{}
	svc := newProjectService(repo, taskGen, checklistGen)

	off := false
	if _, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Name:              "MyApp",
		Platform:          "Android",
		AutoGenerateTasks: &off,
	}); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if taskGen.calls != 0 || checklistGen.calls != 0 {
		t.Errorf("expected no generation calls, got tasks=%d checklist=%d", taskGen.calls, checklistGen.calls)
	}
}

func TestCreateProject_GenerationFailureDoesNotFailCreation(t *testing.T) {
	repo := &MockProjectRepository{
		CreateFunc: func(ctx context.Context, project *domain.Project) error {
			project.ID = uuid.New()
			return nil
		},
	}
	taskGen := &mockGenerator{err: errors.New("lock held")}
	checklistGen := &mockGenerator{}
	svc := newProjectService(repo, taskGen, checklistGen)

	resp, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Name:     "MyApp",
		Platform: "Both",
	})
	if err != nil {
		t.Fatalf("expected creation to survive generation failure, got %v", err)
	}
	if resp == nil {
		t.Fatal("expected a project response")
	}
	if checklistGen.calls != 1 {
		t.Error("expected checklist generation still attempted after task generation failed")
	}
}

func TestCreateProject_InvalidPlatform(t *testing.T) {
	svc := newProjectService(&MockProjectRepository{}, &mockGenerator{}, &mockGenerator{})

	_, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Name:     "MyApp",
		Platform: "windows",
	})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateProject_ScheduleRange(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	publish := start.AddDate(0, 0, -1)
	svc := newProjectService(&MockProjectRepository{}, &mockGenerator{}, &mockGenerator{})

	_, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Name:        "MyApp",
		Platform:    "iOS",
		StartDate:   &start,
		PublishDate: &publish,
	})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR for inverted dates, got %v", err)
	}
}

func TestUpdateProject(t *testing.T) {
	project := &domain.Project{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      "before",
		Platform:  domain.PlatformIOS,
		Status:    domain.ProjectStatusActive,
	}
	repo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			if id == project.ID {
				return project, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		UpdateFunc: func(ctx context.Context, updated *domain.Project) error {
			project = updated
			return nil
		},
	}
	svc := newProjectService(repo, &mockGenerator{}, &mockGenerator{})
	ctx := context.Background()

	name := "after"
	status := "submitted"
	resp, err := svc.UpdateProject(ctx, project.ID, &dto.UpdateProjectRequest{Name: &name, Status: &status})
	if err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}
	if resp.Name != "after" || resp.Status != "submitted" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Platform != string(domain.PlatformIOS) {
		t.Errorf("expected untouched platform to survive, got %q", resp.Platform)
	}

	_, err = svc.UpdateProject(ctx, uuid.New(), &dto.UpdateProjectRequest{Name: &name})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND for unknown project, got %v", err)
	}
}

func TestUpdateSchedule_ValidatesCombinedRange(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	project := &domain.Project{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      "app",
		Platform:  domain.PlatformIOS,
		StartDate: &start,
	}
	repo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return project, nil
		},
		UpdateFunc: func(ctx context.Context, updated *domain.Project) error {
			return nil
		},
	}
	svc := newProjectService(repo, &mockGenerator{}, &mockGenerator{})

	// publish date before the stored start date must be rejected
	publish := start.AddDate(0, 0, -3)
	_, err := svc.UpdateSchedule(context.Background(), project.ID, &dto.UpdateScheduleRequest{PublishDate: &publish})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}

	publish = start.AddDate(0, 1, 0)
	resp, err := svc.UpdateSchedule(context.Background(), project.ID, &dto.UpdateScheduleRequest{PublishDate: &publish})
	if err != nil {
		t.Fatalf("UpdateSchedule() error = %v", err)
	}
	if resp.PublishDate == nil || !resp.PublishDate.Equal(publish) {
		t.Errorf("expected publish date %v, got %v", publish, resp.PublishDate)
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	repo := &MockProjectRepository{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := newProjectService(repo, &mockGenerator{}, &mockGenerator{})

	err := svc.DeleteProject(context.Background(), uuid.New())
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
