package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChecklistStatus represents the progress state of a checklist item
type ChecklistStatus string

const (
	ChecklistStatusIncomplete ChecklistStatus = "incomplete"
	ChecklistStatusInProgress ChecklistStatus = "in_progress"
	ChecklistStatusCompleted  ChecklistStatus = "completed"
)

// ChecklistItem is one store-listing requirement of a project. Default items
// come from the checklist template catalog; Value and Notes hold the user's
// fill-in. Files are owned exclusively by their item.
type ChecklistItem struct {
	BaseModel
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_checklist_items_project_id" json:"project_id"`
	Platform    Platform        `gorm:"type:varchar(20);not null;index:idx_checklist_items_platform" json:"platform"`
	Category    string          `gorm:"type:varchar(50)" json:"category"`
	ItemName    string          `gorm:"type:varchar(255);not null" json:"item_name"`
	Description string          `gorm:"type:text" json:"description"`
	Status      ChecklistStatus `gorm:"type:varchar(20);not null;default:'incomplete'" json:"status"`
	Value       string          `gorm:"type:text" json:"value"`
	Notes       string          `gorm:"type:text" json:"notes"`
	Order       int             `gorm:"column:item_order;not null;default:0" json:"order"`
	IsDefault   bool            `gorm:"not null;default:false;index:idx_checklist_items_is_default" json:"is_default"`

	Files []ChecklistFile `gorm:"foreignKey:ChecklistItemID;constraint:OnDelete:CASCADE" json:"files"`
}

// ChecklistFile is an uploaded attachment of a checklist item.
// FileKey stores the S3 object key, not a full URL.
type ChecklistFile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ChecklistItemID uuid.UUID `gorm:"type:uuid;not null;index:idx_checklist_files_item_id" json:"checklist_item_id"`
	FileName        string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalName    string    `gorm:"type:varchar(255);not null" json:"original_name"`
	FileKey         string    `gorm:"type:text;not null" json:"file_key"`
	FileSize        int64     `gorm:"not null" json:"file_size"`
	ContentType     string    `gorm:"type:varchar(100)" json:"content_type"`
	UploadedAt      time.Time `gorm:"not null" json:"uploaded_at"`
}

// TableName specifies the table name for ChecklistItem
func (ChecklistItem) TableName() string {
	return "checklist_items"
}

// TableName specifies the table name for ChecklistFile
func (ChecklistFile) TableName() string {
	return "checklist_files"
}
