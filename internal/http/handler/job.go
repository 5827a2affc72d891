package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/service"
)

type JobHandler struct {
	jobService service.JobService
}

func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.CompanyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	jobs, err := h.jobService.List(ctx, userID(c), q.CompanyID)
	if err != nil {
		respondError(c, err, "list jobs")
		return
	}

	c.JSON(http.StatusOK, dto.OK(jobs))
}

func (h *JobHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.CompanyID <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("company_id is required"))
		return
	}

	job, err := h.jobService.Create(ctx, userID(c), req.CompanyID, req.ToInput())
	if err != nil {
		respondError(c, err, "create job")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(job))
}

func (h *JobHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.jobService.Update(ctx, userID(c), jobID, req.ToInput())
	if err != nil {
		respondError(c, err, "update job")
		return
	}

	c.JSON(http.StatusOK, dto.OK(job))
}

func (h *JobHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(ctx, userID(c), jobID); err != nil {
		respondError(c, err, "delete job")
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"job_id": jobID}))
}
