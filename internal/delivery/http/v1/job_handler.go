package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, admin *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing jobs does not require an account
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetByID)
	}

	adminJobs := admin.Group("/jobs")
	{
		adminJobs.POST("", handler.Create)
	}
}

type CreateJobRequest struct {
	Title           string   `json:"title" binding:"required"`
	Company         string   `json:"company" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	ExperienceLevel string   `json:"experience_level" binding:"required"`
	Type            string   `json:"type"`
	SalaryMin       float64  `json:"salary_min"`
	SalaryMax       float64  `json:"salary_max"`
	SalaryCurrency  string   `json:"salary_currency"`
	Description     string   `json:"description" binding:"required"`
	Skills          []string `json:"skills" binding:"required"`
}

// List godoc
// @Summary      List Jobs
// @Description  Search, filter, sort and paginate job postings
// @Tags         jobs
// @Produce      json
// @Param        keyword           query  string  false  "Match against title, company or skills"
// @Param        experience_level  query  string  false  "Junior, Mid or Senior"
// @Param        type              query  string  false  "Employment type"
// @Param        min_salary        query  number  false  "Minimum salary"
// @Param        sort              query  string  false  "newest (default), oldest or a-z"
// @Param        page              query  int     false  "Page number"
// @Param        limit             query  int     false  "Page size (max 100)"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Keyword:         c.Query("keyword"),
		ExperienceLevel: c.Query("experience_level"),
		Type:            c.Query("type"),
		Sort:            c.Query("sort"),
	}

	if raw := c.Query("min_salary"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(apperror.BadRequest("min_salary must be a number"))
			return
		}
		filter.MinSalary = &v
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.jobUC.ListJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", result)
}

// GetByID godoc
// @Summary      Job Details
// @Description  Fetch a single job posting by ID
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create Job
// @Description  Create a new job posting (admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body  CreateJobRequest  true  "Job posting"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		ExperienceLevel: req.ExperienceLevel,
		Type:            req.Type,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		Description:     req.Description,
		Skills:          req.Skills,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}
