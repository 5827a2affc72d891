package handler_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/http/handler"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

func validDraftBody() map[string]any {
	return map[string]any{
		"company_id": 42,
		"company":    map[string]any{"name": "Acme", "tagline": "We build rockets"},
		"settings": map[string]any{
			"primary_color":   "#111111",
			"secondary_color": "#222222",
			"accent_color":    "#333333",
		},
		"sections": []map[string]any{
			{"id": "s1", "title": "About", "type": "about", "content": "<p>Hi</p>", "is_visible": true},
			{"id": "s2", "title": "Perks", "type": "benefits", "content": "Snacks", "is_visible": false},
		},
	}
}

var _ = Describe("DraftHandler", func() {
	var (
		router *gin.Engine
		svc    *mockDraftService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockDraftService{}
		h := handler.NewDraftHandler(svc)
		g := router.Group("/api/companies", asUser(owner))
		g.GET("/save", h.Get)
		g.POST("/save", h.Save)
		g.POST("/publish", h.Publish)
	})

	Describe("Get", func() {
		It("returns a null draft when none exists", func() {
			w := doJSON(router, http.MethodGet, "/api/companies/save?company_id=42", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["success"]).To(BeTrue())
			Expect(resp).To(HaveKeyWithValue("draft", BeNil()))
		})

		It("returns the stored draft", func() {
			svc.getFn = func(_ context.Context, userID, companyID int64) (*model.Draft, error) {
				Expect(userID).To(Equal(owner.ID))
				return &model.Draft{
					CompanyID: companyID,
					Snapshot:  model.Snapshot{Company: model.Company{ID: companyID, Name: "Acme"}},
				}, nil
			}

			w := doJSON(router, http.MethodGet, "/api/companies/save?company_id=42", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			draft := decode(w)["draft"].(map[string]any)
			Expect(draft["company_id"]).To(BeNumerically("==", 42))
			Expect(draft["company"].(map[string]any)["name"]).To(Equal("Acme"))
		})

		It("requires company_id", func() {
			w := doJSON(router, http.MethodGet, "/api/companies/save", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["success"]).To(BeFalse())
		})

		It("returns 403 for a company the user does not own", func() {
			svc.getFn = func(context.Context, int64, int64) (*model.Draft, error) {
				return nil, service.ErrForbidden
			}
			w := doJSON(router, http.MethodGet, "/api/companies/save?company_id=42", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("Save", func() {
		It("passes sections in order and returns updatedAt", func() {
			saved := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			var got model.Snapshot
			svc.saveFn = func(_ context.Context, _, companyID int64, snapshot model.Snapshot) (time.Time, error) {
				Expect(companyID).To(Equal(int64(42)))
				got = snapshot
				return saved, nil
			}

			w := doJSON(router, http.MethodPost, "/api/companies/save", validDraftBody())

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["success"]).To(BeTrue())
			Expect(resp["updatedAt"]).To(Equal("2026-03-01T12:00:00Z"))
			Expect(got.Sections).To(HaveLen(2))
			Expect(got.Sections[1].ID).To(Equal("s2"))
			Expect(got.Sections[1].DisplayOrder).To(Equal(1))
			Expect(got.Sections[1].IsVisible).To(BeFalse())
		})

		It("rejects an unknown section type", func() {
			body := validDraftBody()
			body["sections"] = []map[string]any{{"id": "s1", "type": "gallery"}}

			w := doJSON(router, http.MethodPost, "/api/companies/save", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["success"]).To(BeFalse())
		})

		It("rejects a malformed color", func() {
			body := validDraftBody()
			body["settings"].(map[string]any)["accent_color"] = "blue"

			w := doJSON(router, http.MethodPost, "/api/companies/save", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns the error envelope when the service fails", func() {
			svc.saveFn = func(context.Context, int64, int64, model.Snapshot) (time.Time, error) {
				return time.Time{}, errors.New("db down")
			}

			w := doJSON(router, http.MethodPost, "/api/companies/save", validDraftBody())

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			resp := decode(w)
			Expect(resp["success"]).To(BeFalse())
			Expect(resp["error"]).To(Equal("failed to save draft"))
		})
	})

	Describe("Publish", func() {
		It("returns publishedAt and the public url", func() {
			svc.publishFn = func(context.Context, int64, int64) (*service.PublishResult, error) {
				return &service.PublishResult{
					PublishedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
					URL:         "https://careers.test/acme/careers",
				}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/companies/publish", map[string]any{"company_id": 42})

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["success"]).To(BeTrue())
			Expect(resp["publishedAt"]).To(Equal("2026-03-02T09:30:00Z"))
			Expect(resp["url"]).To(Equal("https://careers.test/acme/careers"))
		})

		It("returns 404 when there is nothing to publish", func() {
			svc.publishFn = func(context.Context, int64, int64) (*service.PublishResult, error) {
				return nil, service.ErrDraftNotFound
			}

			w := doJSON(router, http.MethodPost, "/api/companies/publish", map[string]any{"company_id": 42})

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["error"]).To(Equal(service.ErrDraftNotFound.Error()))
		})
	})
})
