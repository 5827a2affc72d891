package router

import (
	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/handler"
)

// CompanyRouter mounts the public page lookup and the owner-only editor
// endpoints on the same prefix.
func CompanyRouter(rg *gin.RouterGroup, companies *handler.CompanyHandler, drafts *handler.DraftHandler, requireAuth gin.HandlerFunc) {
	rg.GET("", companies.Public)

	owner := rg.Group("", requireAuth)
	{
		owner.GET("/mine", companies.Mine)
		owner.POST("", companies.Create)
		owner.DELETE("", companies.Delete)
		owner.GET("/live", companies.Live)

		owner.GET("/save", drafts.Get)
		owner.POST("/save", drafts.Save)
		owner.POST("/publish", drafts.Publish)
	}
}
