package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/response"
	"app-submission-api/internal/service"
)

// uploads beyond this size are rejected before touching storage
const maxUploadSize = 25 << 20

type ChecklistHandler struct {
	checklistService service.ChecklistService
}

func NewChecklistHandler(checklistService service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// CreateItem godoc
// @Summary      Create a checklist item
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateChecklistItemRequest true "Item to create"
// @Success      201 {object} response.SuccessResponse{data=dto.ChecklistItemResponse} "Item created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /checklist [post]
func (h *ChecklistHandler) CreateItem(c *gin.Context) {
	var req dto.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.checklistService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, item)
}

// GetItems godoc
// @Summary      List checklist items
// @Description  Returns checklist items with their files, optionally filtered by project and platform
// @Tags         checklist
// @Produce      json
// @Param        project_id query string false "Project ID (UUID)"
// @Param        platform query string false "Platform" Enums(iOS, Android, Both)
// @Success      200 {object} response.SuccessResponse{data=[]dto.ChecklistItemResponse} "Checklist"
// @Failure      400 {object} response.ErrorResponse "Invalid filter"
// @Router       /checklist [get]
func (h *ChecklistHandler) GetItems(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
			return
		}
		projectID = &id
	}

	var platform *domain.Platform
	if raw := c.Query("platform"); raw != "" {
		p := domain.Platform(raw)
		platform = &p
	}

	items, err := h.checklistService.GetItems(c.Request.Context(), projectID, platform)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, items)
}

// UpdateItem godoc
// @Summary      Update a checklist item
// @Tags         checklist
// @Accept       json
// @Produce      json
// @Param        itemId path string true "Item ID (UUID)"
// @Param        request body dto.UpdateChecklistItemRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.ChecklistItemResponse} "Updated item"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Router       /checklist/{itemId} [put]
func (h *ChecklistHandler) UpdateItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemId", "Invalid checklist item ID")
	if !ok {
		return
	}

	var req dto.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.checklistService.UpdateItem(c.Request.Context(), itemID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, item)
}

// DeleteItem godoc
// @Summary      Delete a checklist item
// @Description  Removes the item together with its uploaded files
// @Tags         checklist
// @Produce      json
// @Param        itemId path string true "Item ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Item deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid item ID"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Router       /checklist/{itemId} [delete]
func (h *ChecklistHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemId", "Invalid checklist item ID")
	if !ok {
		return
	}

	if err := h.checklistService.DeleteItem(c.Request.Context(), itemID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Checklist item deleted"})
}

// UploadFile godoc
// @Summary      Upload a file to a checklist item
// @Description  Accepts a multipart form with a "file" field and stores the blob in object storage
// @Tags         checklist
// @Accept       multipart/form-data
// @Produce      json
// @Param        itemId path string true "Item ID (UUID)"
// @Param        file formData file true "File to upload"
// @Success      200 {object} response.SuccessResponse{data=dto.ChecklistItemResponse} "Item with the new file"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Item not found"
// @Failure      500 {object} response.ErrorResponse "Storage error"
// @Router       /checklist/{itemId}/upload [post]
func (h *ChecklistHandler) UploadFile(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemId", "Invalid checklist item ID")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "file field is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File exceeds the maximum upload size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	item, err := h.checklistService.UploadFile(c.Request.Context(), itemID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, item)
}

// DeleteFile godoc
// @Summary      Delete an uploaded file
// @Tags         checklist
// @Produce      json
// @Param        itemId path string true "Item ID (UUID)"
// @Param        fileName path string true "Stored file name"
// @Success      200 {object} response.SuccessResponse "File deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid item ID"
// @Failure      404 {object} response.ErrorResponse "File not found"
// @Router       /checklist/{itemId}/files/{fileName} [delete]
func (h *ChecklistHandler) DeleteFile(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemId", "Invalid checklist item ID")
	if !ok {
		return
	}

	if err := h.checklistService.DeleteFile(c.Request.Context(), itemID, c.Param("fileName")); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "File deleted"})
}
