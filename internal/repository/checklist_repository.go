package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
)

// ChecklistFilter narrows checklist listings
type ChecklistFilter struct {
	ProjectID *uuid.UUID
	Platform  *domain.Platform
}

// ChecklistRepository defines the interface for checklist data access
type ChecklistRepository interface {
	Create(ctx context.Context, item *domain.ChecklistItem) error
	CreateBatch(ctx context.Context, items []domain.ChecklistItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ChecklistItem, error)
	Find(ctx context.Context, filter ChecklistFilter) ([]domain.ChecklistItem, error)
	Update(ctx context.Context, item *domain.ChecklistItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteDefaultsByProject(ctx context.Context, projectID uuid.UUID) (int64, error)

	AddFile(ctx context.Context, file *domain.ChecklistFile) error
	FindFile(ctx context.Context, itemID uuid.UUID, fileName string) (*domain.ChecklistFile, error)
	DeleteFile(ctx context.Context, fileID uuid.UUID) error
	FindOrphanFiles(ctx context.Context) ([]domain.ChecklistFile, error)
}

// checklistRepositoryImpl is the GORM implementation of ChecklistRepository
type checklistRepositoryImpl struct {
	db *gorm.DB
}

// NewChecklistRepository creates a new instance of ChecklistRepository
func NewChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &checklistRepositoryImpl{db: db}
}

// Create creates a new checklist item
func (r *checklistRepositoryImpl) Create(ctx context.Context, item *domain.ChecklistItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return err
	}
	return nil
}

// CreateBatch inserts a set of checklist items in one statement
func (r *checklistRepositoryImpl) CreateBatch(ctx context.Context, items []domain.ChecklistItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a checklist item with its files
func (r *checklistRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.ChecklistItem, error) {
	var item domain.ChecklistItem
	if err := r.db.WithContext(ctx).
		Preload("Files").
		First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Find returns checklist items matching the filter, in display order
func (r *checklistRepositoryImpl) Find(ctx context.Context, filter ChecklistFilter) ([]domain.ChecklistItem, error) {
	query := r.db.WithContext(ctx).Preload("Files")

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Platform != nil {
		query = query.Where("platform = ?", *filter.Platform)
	}

	var items []domain.ChecklistItem
	if err := query.
		Order("platform ASC").
		Order("item_order ASC").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves all fields of a checklist item
func (r *checklistRepositoryImpl) Update(ctx context.Context, item *domain.ChecklistItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a checklist item and its file rows
func (r *checklistRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checklist_item_id = ?", id).Delete(&domain.ChecklistFile{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.ChecklistItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteDefaultsByProject removes the template-generated checklist items of a
// project. Returns the number of rows removed.
func (r *checklistRepositoryImpl) DeleteDefaultsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND is_default = ?", projectID, true).
		Delete(&domain.ChecklistItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// AddFile attaches an uploaded file record to a checklist item
func (r *checklistRepositoryImpl) AddFile(ctx context.Context, file *domain.ChecklistFile) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return err
	}
	return nil
}

// FindFile looks up a file record by its stored name on an item
func (r *checklistRepositoryImpl) FindFile(ctx context.Context, itemID uuid.UUID, fileName string) (*domain.ChecklistFile, error) {
	var file domain.ChecklistFile
	if err := r.db.WithContext(ctx).
		Where("checklist_item_id = ? AND file_name = ?", itemID, fileName).
		First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile removes a file record
func (r *checklistRepositoryImpl) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.ChecklistFile{}, "id = ?", fileID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindOrphanFiles returns file rows whose checklist item no longer exists
func (r *checklistRepositoryImpl) FindOrphanFiles(ctx context.Context) ([]domain.ChecklistFile, error) {
	var files []domain.ChecklistFile
	if err := r.db.WithContext(ctx).
		Where("checklist_item_id NOT IN (?)",
			r.db.Model(&domain.ChecklistItem{}).Select("id"),
		).
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
