package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/http/middleware"
	"careerline.app/studio/internal/service"
)

// respondError maps service errors onto status codes. Unknown errors become
// a generic 500 and are logged.
func respondError(c *gin.Context, err error, action string) {
	ctx := c.Request.Context()

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, service.ErrCompanyNotFound),
		errors.Is(err, service.ErrJobNotFound),
		errors.Is(err, service.ErrApplicationNotFound),
		errors.Is(err, service.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrJobClosed):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrInvalidSection),
		errors.Is(err, service.ErrInvalidJob),
		errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		slog.InfoContext(ctx, "unique constraint violated", "constraint", pgErr.ConstraintName)
		c.JSON(http.StatusConflict, dto.Fail("already exists"))
	default:
		slog.ErrorContext(ctx, "request failed", "error", err, "action", action)
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to "+action))
	}
}

func badRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request", "error", err)
	c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
}

// userID must only be called behind RequireAuth.
func userID(c *gin.Context) int64 {
	return middleware.GetUser(c.Request.Context()).ID
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid "+name))
		return 0, false
	}
	return id, true
}
