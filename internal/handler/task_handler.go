package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"app-submission-api/internal/dto"
	"app-submission-api/internal/repository"
	"app-submission-api/internal/response"
	"app-submission-api/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTaskRequest true "Task to create"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskResponse} "Task created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}

// GetTasks godoc
// @Summary      List tasks
// @Description  Returns tasks in phase order, optionally scoped to a project
// @Tags         tasks
// @Produce      json
// @Param        project_id query string false "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TaskResponse} "Task list"
// @Failure      400 {object} response.ErrorResponse "Invalid project ID"
// @Router       /tasks [get]
func (h *TaskHandler) GetTasks(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
			return
		}
		projectID = &id
	}

	tasks, err := h.taskService.GetTasks(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tasks)
}

// GetTasksGrouped godoc
// @Summary      List a project's tasks grouped by phase
// @Description  Buckets the tasks by phase number; tasks without a phase land in bucket 0 ("Unknown")
// @Tags         tasks
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        phase_number query int false "Only this phase"
// @Param        completed query bool false "Only (in)complete tasks"
// @Success      200 {object} response.SuccessResponse{data=[]dto.PhaseGroupResponse} "Grouped tasks"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Router       /projects/{projectId}/tasks [get]
func (h *TaskHandler) GetTasksGrouped(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId", "Invalid project ID")
	if !ok {
		return
	}

	var filter repository.TaskFilter
	if raw := c.Query("phase_number"); raw != "" {
		phase, err := strconv.Atoi(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "phase_number must be an integer")
			return
		}
		filter.PhaseNumber = &phase
	}
	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "completed must be a boolean")
			return
		}
		filter.Completed = &completed
	}

	groups, err := h.taskService.GetTasksGrouped(c.Request.Context(), projectID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, groups)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Applies the provided fields; setting status to completed stamps completed_at
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse} "Updated task"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "taskId", "Invalid task ID")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// SetTaskCompletion godoc
// @Summary      Toggle a task's completion
// @Description  Syncs status, the completed flag and completed_at in both directions
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        completed query bool true "Target completion state"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse} "Updated task"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/complete [patch]
func (h *TaskHandler) SetTaskCompletion(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "taskId", "Invalid task ID")
	if !ok {
		return
	}

	completed, err := strconv.ParseBool(c.DefaultQuery("completed", "true"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "completed must be a boolean")
		return
	}

	task, err := h.taskService.SetTaskCompletion(c.Request.Context(), taskID, completed)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// SetTaskMemo godoc
// @Summary      Set a task's memo
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        memo query string true "Memo text; empty clears the memo"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse} "Updated task"
// @Failure      400 {object} response.ErrorResponse "Invalid task ID"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/memo [patch]
func (h *TaskHandler) SetTaskMemo(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "taskId", "Invalid task ID")
	if !ok {
		return
	}

	task, err := h.taskService.SetTaskMemo(c.Request.Context(), taskID, c.Query("memo"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Task deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid task ID"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "taskId", "Invalid task ID")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Task deleted"})
}
