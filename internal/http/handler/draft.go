package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/service"
)

type DraftHandler struct {
	draftService service.DraftService
}

func NewDraftHandler(draftService service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Get answers with a null draft when the company has never been edited.
func (h *DraftHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.CompanyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	draft, err := h.draftService.Get(ctx, userID(c), q.CompanyID)
	if errors.Is(err, service.ErrDraftNotFound) {
		c.JSON(http.StatusOK, dto.DraftResponse{Success: true})
		return
	}
	if err != nil {
		respondError(c, err, "load draft")
		return
	}

	c.JSON(http.StatusOK, dto.DraftResponse{Success: true, Draft: draft})
}

func (h *DraftHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updatedAt, err := h.draftService.Save(ctx, userID(c), req.CompanyID, req.ToSnapshot())
	if err != nil {
		respondError(c, err, "save draft")
		return
	}

	c.JSON(http.StatusOK, dto.SaveDraftResponse{Success: true, UpdatedAt: updatedAt})
}

func (h *DraftHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.draftService.Publish(ctx, userID(c), req.CompanyID)
	if err != nil {
		respondError(c, err, "publish")
		return
	}

	slog.InfoContext(ctx, "careers page published", "company_id", req.CompanyID, "url", result.URL)
	c.JSON(http.StatusOK, dto.PublishResponse{
		Success:     true,
		PublishedAt: result.PublishedAt,
		URL:         result.URL,
	})
}
