package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/http/handler"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

var _ = Describe("CompanyHandler", func() {
	var (
		router    *gin.Engine
		companies *mockCompanyService
		careers   *mockCareersService
	)

	BeforeEach(func() {
		router = gin.New()
		companies = &mockCompanyService{}
		careers = &mockCareersService{}
		h := handler.NewCompanyHandler(companies, careers)
		router.GET("/api/companies", h.Public)
		g := router.Group("/api/companies", asUser(owner))
		g.GET("/mine", h.Mine)
		g.GET("/live", h.Live)
		g.POST("", h.Create)
		g.DELETE("", h.Delete)
	})

	Describe("Public", func() {
		It("serves the live page", func() {
			careers.pageFn = func(_ context.Context, slug string) (*model.PublicPage, error) {
				return &model.PublicPage{
					Snapshot: model.Snapshot{Company: model.Company{Name: "Acme", Slug: slug}},
					Jobs:     []model.Job{{Title: "Engineer"}},
				}, nil
			}

			w := doJSON(router, http.MethodGet, "/api/companies?slug=acme", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			data := decode(w)["data"].(map[string]any)
			Expect(data["company"].(map[string]any)["slug"]).To(Equal("acme"))
			Expect(data["jobs"]).To(HaveLen(1))
		})

		It("does not expose the owner to candidates", func() {
			careers.pageFn = func(_ context.Context, slug string) (*model.PublicPage, error) {
				return &model.PublicPage{
					Snapshot: model.Snapshot{Company: model.Company{ID: 42, OwnerUserID: owner.ID, Name: "Acme", Slug: slug}},
				}, nil
			}

			w := doJSON(router, http.MethodGet, "/api/companies?slug=acme", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			company := decode(w)["data"].(map[string]any)["company"].(map[string]any)
			Expect(company).NotTo(HaveKey("owner_user_id"))
			Expect(company["name"]).To(Equal("Acme"))
			Expect(w.Body.String()).NotTo(ContainSubstring("owner_user_id"))
		})

		It("returns 404 for an unknown slug", func() {
			w := doJSON(router, http.MethodGet, "/api/companies?slug=ghost", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			resp := decode(w)
			Expect(resp["success"]).To(BeFalse())
			Expect(resp["error"]).To(Equal("company not found"))
		})

		It("rejects a malformed slug", func() {
			w := doJSON(router, http.MethodGet, "/api/companies?slug=Not%20A%20Slug", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Create", func() {
		It("creates a company owned by the caller", func() {
			companies.createFn = func(_ context.Context, ownerID int64, name string, slug *string) (*model.Company, error) {
				Expect(ownerID).To(Equal(owner.ID))
				Expect(slug).To(BeNil())
				return &model.Company{ID: 42, Name: name, Slug: "acme", OwnerUserID: ownerID}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/companies", map[string]any{"name": "Acme"})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decode(w)["data"].(map[string]any)["slug"]).To(Equal("acme"))
		})

		It("maps a unique violation to 409", func() {
			companies.createFn = func(context.Context, int64, string, *string) (*model.Company, error) {
				return nil, &pgconn.PgError{Code: "23505", ConstraintName: "companies_slug_key"}
			}

			w := doJSON(router, http.MethodPost, "/api/companies", map[string]any{"name": "Acme", "slug": "acme"})

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("requires a name", func() {
			w := doJSON(router, http.MethodPost, "/api/companies", map[string]any{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	It("lists the caller's companies", func() {
		companies.listMineFn = func(_ context.Context, userID int64) ([]model.Company, error) {
			return []model.Company{{ID: 1, OwnerUserID: userID}, {ID: 2, OwnerUserID: userID}}, nil
		}

		w := doJSON(router, http.MethodGet, "/api/companies/mine", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["data"]).To(HaveLen(2))
	})

	It("returns the live snapshot for the owner", func() {
		companies.liveFn = func(_ context.Context, _, companyID int64) (*model.Snapshot, error) {
			return &model.Snapshot{
				Company:  model.Company{ID: companyID},
				Sections: []model.ContentSection{{ID: "s1", IsVisible: false}},
			}, nil
		}

		w := doJSON(router, http.MethodGet, "/api/companies/live?company_id=42", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["data"].(map[string]any)["sections"]).To(HaveLen(1))
	})

	It("returns 403 when deleting a company the caller does not own", func() {
		companies.deleteFn = func(context.Context, int64, int64) error {
			return service.ErrForbidden
		}

		w := doJSON(router, http.MethodDelete, "/api/companies?company_id=42", nil)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})
})
