package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiUC domain.AIUsecase
}

// NewAIHandler wires the AI-assisted routes. The limiter keeps generative
// provider spend bounded independently of the global rate limit.
func NewAIHandler(protected *gin.RouterGroup, limiter gin.HandlerFunc, aiUC domain.AIUsecase) {
	handler := &AIHandler{aiUC: aiUC}

	ai := protected.Group("/ai")
	ai.Use(limiter)
	{
		ai.POST("/keywords", handler.ExtractKeywords)
		ai.POST("/analyze-resume", handler.AnalyzeResume)
		ai.POST("/chat", handler.Chat)
	}
}

type ExtractKeywordsRequest struct {
	JobDescription string `json:"job_description"`
	Role           string `json:"role"`
}

type AnalyzeResumeRequest struct {
	ResumeID int64 `json:"resume_id"`
	JobID    int64 `json:"job_id"`
}

type ChatRequest struct {
	Message string            `json:"message"`
	History []domain.ChatTurn `json:"history"`
}

// ExtractKeywords godoc
// @Summary      Extract Keywords
// @Description  Extract ATS keywords from a job description, falling back to a local taxonomy when the provider is unavailable
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  ExtractKeywordsRequest  true  "Job description and/or target role"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /ai/keywords [post]
func (h *AIHandler) ExtractKeywords(c *gin.Context) {
	var req ExtractKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.aiUC.ExtractKeywords(c.Request.Context(), req.JobDescription, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Keywords extracted", result)
}

// AnalyzeResume godoc
// @Summary      Analyze Resume
// @Description  Score a resume against a job the user has applied to. Repeat analyses are throttled to once per hour.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  AnalyzeResumeRequest  true  "Resume and job IDs"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /ai/analyze-resume [post]
func (h *AIHandler) AnalyzeResume(c *gin.Context) {
	var req AnalyzeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	result, err := h.aiUC.AnalyzeResume(c.Request.Context(), userID, req.ResumeID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analysis complete", result)
}

// Chat godoc
// @Summary      Career Assistant Chat
// @Description  Answer a career question, with canned fallback replies when the provider is unavailable
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  ChatRequest  true  "Message and optional prior turns"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reply, err := h.aiUC.Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reply generated", reply)
}
