package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"app-submission-api/internal/domain"
)

// AutoMigrate runs migrations for all models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Project{},
		&domain.Task{},
		&domain.ChecklistItem{},
		&domain.ChecklistFile{},
		&domain.Rejection{},
		&domain.AIConversation{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// AutoMigrateWithRetry runs migrations with retry logic
func AutoMigrateWithRetry(db *gorm.DB, maxRetries int, retryInterval time.Duration) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = AutoMigrate(db); err == nil {
			return nil
		}
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	return fmt.Errorf("migration failed after %d retries: %w", maxRetries, err)
}
