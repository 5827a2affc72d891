package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/http/handler"
	"careerline.app/studio/internal/http/middleware"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router    *gin.Engine
		auth      *mockAuthService
		companies *mockCompanyService
	)

	BeforeEach(func() {
		router = gin.New()
		auth = &mockAuthService{}
		companies = &mockCompanyService{}
		h := handler.NewAuthHandler(auth, companies, false)
		router.GET("/auth/url", h.GetAuthURL)
		router.POST("/auth/exchange", h.Exchange)
		router.POST("/auth/logout", h.Logout)
		router.GET("/auth/me", asUser(owner), h.Me)
	})

	It("returns an authorization URL with its state", func() {
		w := doJSON(router, http.MethodGet, "/auth/url", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		data := decode(w)["data"].(map[string]any)
		Expect(data["state"]).NotTo(BeEmpty())
		Expect(data["url"]).To(ContainSubstring(data["state"].(string)))
	})

	Describe("Exchange", func() {
		It("sets the session cookie", func() {
			expires := time.Now().Add(service.SessionTTL)
			auth.callbackFn = func(_ context.Context, code string) (*model.User, *model.Session, error) {
				Expect(code).To(Equal("abc"))
				return owner, &model.Session{ID: 99, UserID: owner.ID, ExpiresAt: expires}, nil
			}

			w := doJSON(router, http.MethodPost, "/auth/exchange", map[string]any{"code": "abc"})

			Expect(w.Code).To(Equal(http.StatusOK))
			data := decode(w)["data"].(map[string]any)
			Expect(data["session_id"]).To(Equal("99"))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=99"))
		})

		It("returns 400 on an invalid code", func() {
			auth.callbackFn = func(context.Context, string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrInvalidCode
			}

			w := doJSON(router, http.MethodPost, "/auth/exchange", map[string]any{"code": "bad"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	It("deletes the session on logout", func() {
		var deleted int64
		auth.logoutFn = func(_ context.Context, sessionID int64) error {
			deleted = sessionID
			return nil
		}
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set(middleware.SessionIDHeader, "99")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(deleted).To(Equal(int64(99)))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("Max-Age=0"))
	})

	It("returns the user with their companies", func() {
		companies.listMineFn = func(_ context.Context, userID int64) ([]model.Company, error) {
			return []model.Company{{ID: 42, OwnerUserID: userID, Slug: "acme"}}, nil
		}

		w := doJSON(router, http.MethodGet, "/auth/me", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		data := decode(w)["data"].(map[string]any)
		Expect(data["user"].(map[string]any)["email"]).To(Equal(owner.Email))
		Expect(data["companies"]).To(HaveLen(1))
	})
})
