package router

import (
	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/handler"
)

func CareersRouter(rg *gin.RouterGroup, h *handler.CareersHandler) {
	rg.GET("/:slug/jobs", h.Jobs)
	rg.GET("/:slug/jobs/:jobSlug", h.Job)
	rg.POST("/:slug/jobs/:jobSlug/apply", h.Apply)
}
