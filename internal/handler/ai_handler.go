package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"app-submission-api/internal/dto"
	"app-submission-api/internal/response"
	"app-submission-api/internal/service"
)

type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// Chat godoc
// @Summary      Ask the submission assistant
// @Description  Sends a free-form question to the assistant and appends the exchange to the project's conversation log
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body dto.AIChatRequest true "Question"
// @Success      200 {object} response.SuccessResponse{data=dto.AIChatResponse} "Assistant answer"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "AI service error"
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	var req dto.AIChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	answer, err := h.aiService.Chat(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, answer)
}

// AnalyzeRejection godoc
// @Summary      Analyze a rejection reason
// @Description  Runs an ad-hoc analysis without recording a rejection
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body dto.AIAnalysisRequest true "Rejection reason"
// @Success      200 {object} response.SuccessResponse{data=dto.AIAnalysisResponse} "Analysis"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "AI service error"
// @Router       /ai/analyze-rejection [post]
func (h *AIHandler) AnalyzeRejection(c *gin.Context) {
	var req dto.AIAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	analysis, err := h.aiService.AnalyzeRejection(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, analysis)
}
