package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/handler"
	"careerline.app/studio/internal/http/middleware"
	"careerline.app/studio/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterConfig struct {
	IsProduction bool
	DB           Pinger
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", health(cfg.DB))

	auth := services.Auth()
	companies := services.Companies()
	careers := services.Careers()
	applications := services.Applications()
	requireAuth := middleware.RequireAuth(auth, cfg.IsProduction)

	authHandler := handler.NewAuthHandler(auth, companies, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	api := router.Group("/api")
	{
		companyHandler := handler.NewCompanyHandler(companies, careers)
		draftHandler := handler.NewDraftHandler(services.Drafts())
		CompanyRouter(api.Group("/companies"), companyHandler, draftHandler, requireAuth)

		careersHandler := handler.NewCareersHandler(careers, applications)
		CareersRouter(api.Group("/careers"), careersHandler)

		jobHandler := handler.NewJobHandler(services.Jobs())
		JobRouter(api.Group("/jobs", requireAuth), jobHandler)

		applicationHandler := handler.NewApplicationHandler(applications)
		ApplicationRouter(api.Group("/applications", requireAuth), applicationHandler)
	}
}

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				slog.WarnContext(ctx, "health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
