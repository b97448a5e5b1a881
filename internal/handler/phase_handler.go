package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"app-submission-api/internal/response"
	"app-submission-api/internal/template"
)

type PhaseHandler struct{}

func NewPhaseHandler() *PhaseHandler {
	return &PhaseHandler{}
}

// GetPhases godoc
// @Summary      List the submission phases
// @Description  Returns the static phase catalog the default tasks are organized by
// @Tags         phases
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]template.PhaseSummary} "Phase catalog"
// @Router       /phases [get]
func (h *PhaseHandler) GetPhases(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, template.PhaseSummaries())
}
