package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/common/logger"
	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

type contextKey string

const (
	SessionCookieName = "careerline_session"
	SessionIDHeader   = "X-Session-ID"

	userContextKey      contextKey = "user"
	sessionIDContextKey contextKey = "session_id"
)

// SessionValidator is the part of service.AuthService the middleware needs.
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, error)
}

// RequireAuth resolves the session from the X-Session-ID header or the
// careerline_session cookie and puts the user on the request context.
func RequireAuth(auth SessionValidator, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := SessionIDFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("not authenticated"))
			return
		}

		user, err := auth.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				ClearSessionCookie(c, secureCookies)
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("session expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("failed to validate session"))
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

// WithUser returns ctx carrying user, as RequireAuth would set it.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// SessionIDFromRequest prefers the header over the cookie.
func SessionIDFromRequest(c *gin.Context) (int64, error) {
	raw := c.GetHeader(SessionIDHeader)
	if raw == "" {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			return 0, err
		}
		raw = cookie
	}
	return strconv.ParseInt(raw, 10, 64)
}

func SetSessionCookie(c *gin.Context, sessionID int64, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		strconv.FormatInt(sessionID, 10),
		maxAge,
		"/",
		"",
		secure,
		true,
	)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
