package router

import (
	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/handler"
)

func JobRouter(rg *gin.RouterGroup, h *handler.JobHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func ApplicationRouter(rg *gin.RouterGroup, h *handler.ApplicationHandler) {
	rg.GET("", h.List)
	rg.PATCH("/:id/status", h.UpdateStatus)
}
