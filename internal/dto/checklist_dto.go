package dto

import (
	"time"

	"github.com/google/uuid"

	"app-submission-api/internal/domain"
)

// CreateChecklistItemRequest represents the request to create a checklist item
type CreateChecklistItemRequest struct {
	ProjectID   uuid.UUID `json:"project_id" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Platform    string    `json:"platform" binding:"required" example:"iOS"`
	Category    string    `json:"category" binding:"required" example:"screenshots"`
	ItemName    string    `json:"item_name" binding:"required,min=1,max=300" example:"6.7インチスクリーンショット"`
	Description string    `json:"description" binding:"max=1000"`
	Order       int       `json:"order" example:"3"`
}

// UpdateChecklistItemRequest represents the request to update a checklist item
type UpdateChecklistItemRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=incomplete in_progress completed" example:"completed"`
	Value  *string `json:"value,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ChecklistFileResponse represents an uploaded file on a checklist item
type ChecklistFileResponse struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	FileURL      string    `json:"file_url"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `json:"content_type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// ChecklistItemResponse represents the checklist item response
type ChecklistItemResponse struct {
	ID          uuid.UUID               `json:"id"`
	ProjectID   uuid.UUID               `json:"project_id"`
	Platform    string                  `json:"platform"`
	Category    string                  `json:"category"`
	ItemName    string                  `json:"item_name"`
	Description string                  `json:"description"`
	Status      string                  `json:"status"`
	Value       string                  `json:"value,omitempty"`
	Notes       string                  `json:"notes,omitempty"`
	Order       int                     `json:"order"`
	IsDefault   bool                    `json:"is_default"`
	Files       []ChecklistFileResponse `json:"files"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// FileURLResolver maps a stored file key to a reachable URL
type FileURLResolver func(key string) string

// ToChecklistItemResponse converts a domain checklist item to its response form
func ToChecklistItemResponse(item *domain.ChecklistItem, resolveURL FileURLResolver) ChecklistItemResponse {
	files := make([]ChecklistFileResponse, 0, len(item.Files))
	for i := range item.Files {
		f := &item.Files[i]
		url := f.FileKey
		if resolveURL != nil {
			url = resolveURL(f.FileKey)
		}
		files = append(files, ChecklistFileResponse{
			ID:           f.ID,
			FileName:     f.FileName,
			OriginalName: f.OriginalName,
			FileURL:      url,
			FileSize:     f.FileSize,
			ContentType:  f.ContentType,
			UploadedAt:   f.UploadedAt,
		})
	}

	return ChecklistItemResponse{
		ID:          item.ID,
		ProjectID:   item.ProjectID,
		Platform:    string(item.Platform),
		Category:    item.Category,
		ItemName:    item.ItemName,
		Description: item.Description,
		Status:      string(item.Status),
		Value:       item.Value,
		Notes:       item.Notes,
		Order:       item.Order,
		IsDefault:   item.IsDefault,
		Files:       files,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToChecklistItemResponses converts a slice of domain checklist items
func ToChecklistItemResponses(items []domain.ChecklistItem, resolveURL FileURLResolver) []ChecklistItemResponse {
	responses := make([]ChecklistItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToChecklistItemResponse(&items[i], resolveURL))
	}
	return responses
}
