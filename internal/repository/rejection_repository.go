package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"app-submission-api/internal/domain"
)

// RejectionRepository defines the interface for rejection data access
type RejectionRepository interface {
	Create(ctx context.Context, rejection *domain.Rejection) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Rejection, error)
	Find(ctx context.Context, projectID *uuid.UUID) ([]domain.Rejection, error)
	Update(ctx context.Context, rejection *domain.Rejection) error
}

// rejectionRepositoryImpl is the GORM implementation of RejectionRepository
type rejectionRepositoryImpl struct {
	db *gorm.DB
}

// NewRejectionRepository creates a new instance of RejectionRepository
func NewRejectionRepository(db *gorm.DB) RejectionRepository {
	return &rejectionRepositoryImpl{db: db}
}

// Create creates a new rejection record
func (r *rejectionRepositoryImpl) Create(ctx context.Context, rejection *domain.Rejection) error {
	if err := r.db.WithContext(ctx).Create(rejection).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a rejection by its ID
func (r *rejectionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Rejection, error) {
	var rejection domain.Rejection
	if err := r.db.WithContext(ctx).First(&rejection, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rejection, nil
}

// Find returns rejections, optionally scoped to a project, newest first
func (r *rejectionRepositoryImpl) Find(ctx context.Context, projectID *uuid.UUID) ([]domain.Rejection, error) {
	query := r.db.WithContext(ctx)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var rejections []domain.Rejection
	if err := query.
		Order("rejection_date DESC").
		Find(&rejections).Error; err != nil {
		return nil, err
	}
	return rejections, nil
}

// Update saves all fields of a rejection
func (r *rejectionRepositoryImpl) Update(ctx context.Context, rejection *domain.Rejection) error {
	if err := r.db.WithContext(ctx).Save(rejection).Error; err != nil {
		return err
	}
	return nil
}
