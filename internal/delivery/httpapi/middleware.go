package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProfileHeader carries the active learner profile for a request.
const ProfileHeader = "X-Profile-ID"

type profileHandlerFunc func(c echo.Context, profileID string) error

// withProfile resolves the active profile from the request header. Requests
// without a profile degrade to an empty response instead of failing: the
// surrounding app treats "no active profile" as a benign no-op.
func (h *Handler) withProfile(fn profileHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profileID := c.Request().Header.Get(ProfileHeader)
		if profileID == "" {
			return c.NoContent(http.StatusNoContent)
		}
		return fn(c, profileID)
	}
}

// internalError logs the failure and replies with a generic 500.
func (h *Handler) internalError(c echo.Context, msg string, err error) error {
	h.logger.Error(msg,
		zap.String("path", c.Request().URL.Path),
		zap.Error(err),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
