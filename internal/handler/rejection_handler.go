package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"app-submission-api/internal/dto"
	"app-submission-api/internal/response"
	"app-submission-api/internal/service"
)

type RejectionHandler struct {
	rejectionService service.RejectionService
}

func NewRejectionHandler(rejectionService service.RejectionService) *RejectionHandler {
	return &RejectionHandler{rejectionService: rejectionService}
}

// CreateRejection godoc
// @Summary      Record a store rejection
// @Description  Stores the rejection and, when the AI client is configured, fills in an analysis and action plan
// @Tags         rejections
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateRejectionRequest true "Rejection to record"
// @Success      201 {object} response.SuccessResponse{data=dto.RejectionResponse} "Rejection recorded"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /rejections [post]
func (h *RejectionHandler) CreateRejection(c *gin.Context) {
	var req dto.CreateRejectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	rejection, err := h.rejectionService.CreateRejection(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, rejection)
}

// GetRejections godoc
// @Summary      List rejections
// @Description  Returns rejections newest first, optionally scoped to a project
// @Tags         rejections
// @Produce      json
// @Param        project_id query string false "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.RejectionResponse} "Rejection list"
// @Failure      400 {object} response.ErrorResponse "Invalid project ID"
// @Router       /rejections [get]
func (h *RejectionHandler) GetRejections(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
			return
		}
		projectID = &id
	}

	rejections, err := h.rejectionService.GetRejections(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rejections)
}

// UpdateRejection godoc
// @Summary      Update a rejection
// @Description  Updates the workflow status or the action plan
// @Tags         rejections
// @Accept       json
// @Produce      json
// @Param        rejectionId path string true "Rejection ID (UUID)"
// @Param        request body dto.UpdateRejectionRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.RejectionResponse} "Updated rejection"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Rejection not found"
// @Router       /rejections/{rejectionId} [put]
func (h *RejectionHandler) UpdateRejection(c *gin.Context) {
	rejectionID, ok := parseUUIDParam(c, "rejectionId", "Invalid rejection ID")
	if !ok {
		return
	}

	var req dto.UpdateRejectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	rejection, err := h.rejectionService.UpdateRejection(c.Request.Context(), rejectionID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rejection)
}
