package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/service"
)

type CompanyHandler struct {
	companyService service.CompanyService
	careersService service.CareersService
}

func NewCompanyHandler(companyService service.CompanyService, careersService service.CareersService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		careersService: careersService,
	}
}

// Public serves the live careers page for a slug.
func (h *CompanyHandler) Public(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.SlugQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.careersService.PublicPage(ctx, q.Slug)
	if err != nil {
		respondError(c, err, "load careers page")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToPublicPageResponse(page)))
}

func (h *CompanyHandler) Mine(c *gin.Context) {
	ctx := c.Request.Context()

	companies, err := h.companyService.ListMine(ctx, userID(c))
	if err != nil {
		respondError(c, err, "list companies")
		return
	}

	c.JSON(http.StatusOK, dto.OK(companies))
}

func (h *CompanyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	company, err := h.companyService.Create(ctx, userID(c), req.Name, req.Slug)
	if err != nil {
		respondError(c, err, "create company")
		return
	}

	slog.InfoContext(ctx, "company created", "company_id", company.ID, "slug", company.Slug)
	c.JSON(http.StatusCreated, dto.OK(company))
}

// Live returns the published snapshot with hidden sections, for seeding an editor.
func (h *CompanyHandler) Live(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.CompanyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	snapshot, err := h.companyService.Live(ctx, userID(c), q.CompanyID)
	if err != nil {
		respondError(c, err, "load live page")
		return
	}

	c.JSON(http.StatusOK, dto.OK(snapshot))
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.CompanyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.companyService.Delete(ctx, userID(c), q.CompanyID); err != nil {
		respondError(c, err, "delete company")
		return
	}

	slog.InfoContext(ctx, "company deleted", "company_id", q.CompanyID)
	c.JSON(http.StatusOK, dto.OK(gin.H{"company_id": q.CompanyID}))
}
