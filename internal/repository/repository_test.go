package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create tables by hand for SQLite compatibility
	db.Exec(`CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		name TEXT NOT NULL,
		platform TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		start_date DATETIME,
		publish_date DATETIME
	)`)

	db.Exec(`CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		project_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		phase TEXT NOT NULL,
		phase_number INTEGER,
		step_number TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		completed BOOLEAN NOT NULL DEFAULT 0,
		completed_at DATETIME,
		due_date DATETIME,
		priority TEXT NOT NULL DEFAULT 'medium',
		task_order INTEGER NOT NULL DEFAULT 0,
		estimated_days TEXT,
		assigned_to TEXT,
		platform_specific TEXT,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		memo TEXT
	)`)

	db.Exec(`CREATE TABLE checklist_items (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		project_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		category TEXT NOT NULL,
		item_name TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'incomplete',
		value TEXT,
		notes TEXT,
		item_order INTEGER NOT NULL DEFAULT 0,
		is_default BOOLEAN NOT NULL DEFAULT 0
	)`)

	db.Exec(`CREATE TABLE checklist_files (
		id TEXT PRIMARY KEY,
		checklist_item_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		original_name TEXT NOT NULL,
		file_key TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		content_type TEXT,
		uploaded_at DATETIME NOT NULL
	)`)

	db.Exec(`CREATE TABLE rejections (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		project_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		rejection_date DATETIME NOT NULL,
		reason TEXT NOT NULL,
		ai_analysis TEXT,
		action_plan TEXT,
		status TEXT NOT NULL DEFAULT 'open'
	)`)

	db.Exec(`CREATE TABLE ai_conversations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		project_id TEXT NOT NULL UNIQUE,
		messages TEXT
	)`)

	return db
}
