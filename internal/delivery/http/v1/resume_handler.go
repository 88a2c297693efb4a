package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.POST("", handler.Create)
		resumes.GET("", handler.List)
		resumes.GET("/:id", handler.GetByID)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
	}
}

type ResumeRequest struct {
	Title    string          `json:"title"`
	Template string          `json:"template"`
	Content  json.RawMessage `json:"content"`
	Keywords []string        `json:"keywords"`
}

// Create godoc
// @Summary      Create Resume
// @Description  Create a resume document for the authenticated user
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resume  body  ResumeRequest  true  "Resume"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /resumes [post]
func (h *ResumeHandler) Create(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume := &domain.Resume{
		Title:    req.Title,
		Template: req.Template,
		Content:  req.Content,
		Keywords: req.Keywords,
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.resumeUC.CreateResume(c.Request.Context(), userID, resume); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", resume)
}

// List godoc
// @Summary      List Resumes
// @Description  List the authenticated user's resumes, newest first
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query  string  false  "Match against resume title"
// @Param        page     query  int     false  "Page number"
// @Param        limit    query  int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /resumes [get]
func (h *ResumeHandler) List(c *gin.Context) {
	filter := domain.ResumeFilter{Keyword: c.Query("keyword")}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	userID := c.GetString(string(domain.KeyUserID))
	result, err := h.resumeUC.ListResumes(c.Request.Context(), userID, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", result)
}

// GetByID godoc
// @Summary      Resume Details
// @Description  Fetch one of the authenticated user's resumes
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
func (h *ResumeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.GetResume(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", resume)
}

// Update godoc
// @Summary      Update Resume
// @Description  Replace the title, template, content and keywords of a resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int            true  "Resume ID"
// @Param        resume  body  ResumeRequest  true  "Resume"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [put]
func (h *ResumeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume := &domain.Resume{
		ID:       id,
		Title:    req.Title,
		Template: req.Template,
		Content:  req.Content,
		Keywords: req.Keywords,
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.resumeUC.UpdateResume(c.Request.Context(), userID, resume); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", resume)
}

// Delete godoc
// @Summary      Delete Resume
// @Description  Delete one of the authenticated user's resumes
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.resumeUC.DeleteResume(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
