package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

type ApplicationHandler struct {
	applicationService service.ApplicationService
}

func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.ApplicationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	var status *model.ApplicationStatus
	if q.Status != "" {
		status = &q.Status
	}

	apps, err := h.applicationService.List(ctx, userID(c), q.CompanyID, status)
	if err != nil {
		respondError(c, err, "list applications")
		return
	}

	c.JSON(http.StatusOK, dto.OK(apps))
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	appID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	app, err := h.applicationService.UpdateStatus(ctx, userID(c), appID, req.Status)
	if err != nil {
		respondError(c, err, "update application")
		return
	}

	c.JSON(http.StatusOK, dto.OK(app))
}
