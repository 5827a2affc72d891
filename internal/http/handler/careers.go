package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/listing"
	"careerline.app/studio/internal/service"
)

// CareersHandler serves the candidate-facing endpoints. None require a session.
type CareersHandler struct {
	careersService     service.CareersService
	applicationService service.ApplicationService
}

func NewCareersHandler(careersService service.CareersService, applicationService service.ApplicationService) *CareersHandler {
	return &CareersHandler{
		careersService:     careersService,
		applicationService: applicationService,
	}
}

func (h *CareersHandler) Jobs(c *gin.Context) {
	ctx := c.Request.Context()

	var filters listing.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.careersService.Jobs(ctx, c.Param("slug"), filters)
	if err != nil {
		respondError(c, err, "list jobs")
		return
	}

	c.JSON(http.StatusOK, dto.OK(result))
}

func (h *CareersHandler) Job(c *gin.Context) {
	ctx := c.Request.Context()

	company, job, err := h.careersService.Job(ctx, c.Param("slug"), c.Param("jobSlug"))
	if err != nil {
		respondError(c, err, "load job")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.JobDetail{Company: dto.ToPublicCompany(*company), Job: *job}))
}

func (h *CareersHandler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	app, err := h.applicationService.Submit(ctx, c.Param("slug"), c.Param("jobSlug"), req.Name, req.Email)
	if err != nil {
		respondError(c, err, "submit application")
		return
	}

	slog.InfoContext(ctx, "application submitted", "application_id", app.ID, "job_id", app.JobID)
	c.JSON(http.StatusCreated, dto.OK(app))
}
