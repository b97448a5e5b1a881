package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"app-submission-api/internal/domain"
	"app-submission-api/internal/dto"
	"app-submission-api/internal/response"
	"app-submission-api/internal/service"
)

type ProjectHandler struct {
	projectService   service.ProjectService
	taskService      service.TaskService
	checklistService service.ChecklistService
}

func NewProjectHandler(projectService service.ProjectService, taskService service.TaskService, checklistService service.ChecklistService) *ProjectHandler {
	return &ProjectHandler{
		projectService:   projectService,
		taskService:      taskService,
		checklistService: checklistService,
	}
}

// CreateProject godoc
// @Summary      Create a submission project
// @Description  Creates a project and, unless auto_generate_tasks is false, materializes the default tasks and checklist for its platform
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project to create"
// @Success      201 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, project)
}

// GetProjects godoc
// @Summary      List projects
// @Description  Returns all projects, newest first
// @Tags         projects
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.ProjectResponse} "Project list"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.GetProjects(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, projects)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project"
// @Failure      400 {object} response.ErrorResponse "Invalid project ID"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Applies the provided fields; omitted fields keep their value
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.UpdateProjectRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Updated project"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// UpdateSchedule godoc
// @Summary      Update a project's schedule
// @Description  Patches start_date and publish_date; the pair must stay ordered
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.UpdateScheduleRequest true "Schedule fields"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Updated project"
// @Failure      400 {object} response.ErrorResponse "Invalid schedule"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /projects/{projectId}/schedule [patch]
func (h *ProjectHandler) UpdateSchedule(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateSchedule(c.Request.Context(), projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Removes the project and all of its tasks, checklist items, files, rejections and conversation log
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Project deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid project ID"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Project deleted"})
}

// GenerateDefaultTasks godoc
// @Summary      Regenerate the default tasks
// @Description  Replaces the project's template-generated tasks with a fresh expansion; user-created tasks are untouched
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        platform query string false "Platform override" Enums(iOS, Android, Both)
// @Success      200 {object} response.SuccessResponse{data=dto.GenerateDefaultsResponse} "Tasks generated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Failure      409 {object} response.ErrorResponse "Generation already in progress"
// @Router       /projects/{projectId}/generate-default-tasks [post]
func (h *ProjectHandler) GenerateDefaultTasks(c *gin.Context) {
	h.generateDefaults(c, h.taskService.GenerateDefaults)
}

// GenerateDefaultChecklist godoc
// @Summary      Regenerate the default checklist
// @Description  Replaces the project's template-generated checklist items with a fresh expansion; user-created items are untouched
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        platform query string false "Platform override" Enums(iOS, Android, Both)
// @Success      200 {object} response.SuccessResponse{data=dto.GenerateDefaultsResponse} "Checklist generated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /projects/{projectId}/generate-default-checklist [post]
func (h *ProjectHandler) GenerateDefaultChecklist(c *gin.Context) {
	h.generateDefaults(c, h.checklistService.GenerateDefaults)
}

func (h *ProjectHandler) generateDefaults(c *gin.Context, generate func(ctx context.Context, projectID uuid.UUID, platformOverride *domain.Platform) (int, error)) {
	projectID, ok := parseUUIDParam(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	var platformOverride *domain.Platform
	if raw := c.Query("platform"); raw != "" {
		platform := domain.Platform(raw)
		if !platform.Valid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "platform must be one of: iOS, Android, Both")
			return
		}
		platformOverride = &platform
	}

	created, err := generate(c.Request.Context(), projectID, platformOverride)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	platform := ""
	if platformOverride != nil {
		platform = string(*platformOverride)
	} else if project, err := h.projectService.GetProject(c.Request.Context(), projectID); err == nil {
		platform = project.Platform
	}

	response.SendSuccess(c, http.StatusOK, dto.GenerateDefaultsResponse{
		ProjectID: projectID,
		Platform:  platform,
		Created:   created,
	})
}

// parseUUIDParam reads a UUID path parameter, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, message)
		return uuid.Nil, false
	}
	return id, true
}
