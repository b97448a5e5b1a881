package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
)

// TaskFilter narrows task listings
type TaskFilter struct {
	PhaseNumber *int
	Completed   *bool
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	CreateBatch(ctx context.Context, tasks []domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter TaskFilter) ([]domain.Task, error)
	FindAll(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteDefaultsByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create creates a new task
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return err
	}
	return nil
}

// CreateBatch inserts a set of tasks in one statement
func (r *taskRepositoryImpl) CreateBatch(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&tasks).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a task by its ID
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByProject returns a project's tasks ordered by phase then in-phase order.
// Tasks without a phase number sort first.
func (r *taskRepositoryImpl) FindByProject(ctx context.Context, projectID uuid.UUID, filter TaskFilter) ([]domain.Task, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)

	if filter.PhaseNumber != nil {
		query = query.Where("phase_number = ?", *filter.PhaseNumber)
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	var tasks []domain.Task
	if err := query.
		Order("phase_number ASC NULLS FIRST").
		Order("task_order ASC").
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindAll returns every task
func (r *taskRepositoryImpl) FindAll(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves all fields of a task
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a task by ID
func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteDefaultsByProject removes the template-generated tasks of a project,
// leaving user-created tasks untouched. Returns the number of rows removed.
func (r *taskRepositoryImpl) DeleteDefaultsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND is_default = ?", projectID, true).
		Delete(&domain.Task{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
