package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/http/middleware"
	"careerline.app/studio/internal/service"
)

type AuthHandler struct {
	authService    service.AuthService
	companyService service.CompanyService
	secureCookies  bool
}

func NewAuthHandler(authService service.AuthService, companyService service.CompanyService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		companyService: companyService,
		secureCookies:  secureCookies,
	}
}

// GetAuthURL returns the hosted sign-in URL. The caller keeps state and
// checks it on the redirect back before exchanging the code.
func (h *AuthHandler) GetAuthURL(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := generateState()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to generate state"))
		return
	}

	url, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to get authorization URL"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.AuthURLResponse{URL: url, State: state}))
}

func (h *AuthHandler) Exchange(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, session, err := h.authService.HandleCallback(ctx, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			c.JSON(http.StatusBadRequest, dto.Fail("invalid authorization code"))
			return
		}
		slog.ErrorContext(ctx, "failed to exchange code", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to sign in"))
		return
	}

	middleware.SetSessionCookie(c, session.ID, int(service.SessionTTL.Seconds()), h.secureCookies)
	slog.InfoContext(ctx, "user signed in", "user_id", user.ID)

	c.JSON(http.StatusOK, dto.OK(dto.ExchangeCodeResponse{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		User:      dto.ToUserResponse(user),
	}))
}

// Logout always clears the cookie, even when the session is already gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sessionID, err := middleware.SessionIDFromRequest(c); err == nil && sessionID > 0 {
		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}

	middleware.ClearSessionCookie(c, h.secureCookies)
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "logged out"}))
}

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	companies, err := h.companyService.ListMine(ctx, user.ID)
	if err != nil {
		respondError(c, err, "load companies")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.MeResponse{
		User:      dto.ToUserResponse(user),
		Companies: companies,
	}))
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
