package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/http/middleware"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

type mockValidator struct {
	validateFn func(ctx context.Context, sessionID int64) (*model.User, error)
}

func (m *mockValidator) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	return m.validateFn(ctx, sessionID)
}

var _ = Describe("RequireAuth", func() {
	var (
		router *gin.Engine
		auth   *mockValidator
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		auth = &mockValidator{validateFn: func(_ context.Context, sessionID int64) (*model.User, error) {
			if sessionID == 42 {
				return &model.User{ID: 7, Email: "owner@acme.test"}, nil
			}
			return nil, service.ErrSessionExpired
		}}
		router = gin.New()
		router.GET("/me", middleware.RequireAuth(auth, false), func(c *gin.Context) {
			user := middleware.GetUser(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{
				"user_id":    user.ID,
				"session_id": middleware.GetSessionID(c.Request.Context()),
			})
		})
	})

	It("accepts the session header", func() {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(middleware.SessionIDHeader, "42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"user_id":7`))
	})

	It("accepts the session cookie", func() {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "42"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("rejects requests without a session", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(ContainSubstring(`"success":false`))
	})

	It("clears the cookie of expired sessions", func() {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "99"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=;"))
	})

	It("returns 500 when sessions cannot be checked", func() {
		auth.validateFn = func(context.Context, int64) (*model.User, error) {
			return nil, errors.New("db down")
		}
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(middleware.SessionIDHeader, "42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})

var _ = Describe("Recovery", func() {
	It("replaces panics with a generic 500", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(middleware.Recovery(), middleware.Logger())
		router.GET("/boom", func(*gin.Context) { panic("nil pointer") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"success":false,"error":"internal server error"}`))
	})
})
