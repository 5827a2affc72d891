package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/http/handler"
	"careerline.app/studio/internal/model"
)

var _ = Describe("ApplicationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockApplicationService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockApplicationService{}
		h := handler.NewApplicationHandler(svc)
		g := router.Group("/api/applications", asUser(owner))
		g.GET("", h.List)
		g.PATCH("/:id/status", h.UpdateStatus)
	})

	It("passes no status filter when none is given", func() {
		svc.listFn = func(_ context.Context, _, _ int64, status *model.ApplicationStatus) ([]model.Application, error) {
			Expect(status).To(BeNil())
			return []model.Application{{ID: 1}}, nil
		}

		w := doJSON(router, http.MethodGet, "/api/applications?company_id=42", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("filters by status", func() {
		svc.listFn = func(_ context.Context, _, _ int64, status *model.ApplicationStatus) ([]model.Application, error) {
			Expect(*status).To(Equal(model.ApplicationStatusHired))
			return nil, nil
		}

		w := doJSON(router, http.MethodGet, "/api/applications?company_id=42&status=hired", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("rejects an unknown status filter", func() {
		w := doJSON(router, http.MethodGet, "/api/applications?company_id=42&status=ghosted", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("updates the status", func() {
		svc.updateFn = func(_ context.Context, userID, appID int64, status model.ApplicationStatus) (*model.Application, error) {
			Expect(userID).To(Equal(owner.ID))
			return &model.Application{ID: appID, Status: status}, nil
		}

		w := doJSON(router, http.MethodPatch, "/api/applications/3/status", map[string]any{"status": "rejected"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["data"].(map[string]any)["status"]).To(Equal("rejected"))
	})
})
