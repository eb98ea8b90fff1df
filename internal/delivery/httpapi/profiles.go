package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/repository"
)

type createProfileRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) createProfile(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile payload")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	profile, err := h.profileService.Create(c.Request().Context(), req.ID, req.Name)
	if err != nil {
		return h.internalError(c, "create profile", err)
	}

	return c.JSON(http.StatusCreated, profile)
}

func (h *Handler) getProfile(c echo.Context, profileID string) error {
	profile, err := h.profileService.Get(c.Request().Context(), profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "profile not found")
		}

		return h.internalError(c, "get profile", err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) getProgress(c echo.Context, profileID string) error {
	summary, err := h.analyticsService.GetProgressSummary(c.Request().Context(), profileID)
	if err != nil {
		return h.internalError(c, "progress summary", err)
	}

	return c.JSON(http.StatusOK, summary)
}

type logErrorRequest struct {
	LessonID string `json:"lessonId"`
	Russian  string `json:"russian"`
	English  string `json:"english"`
	Errors   int    `json:"errors"`
}

// logError records a mistake from a typing or block exercise.
func (h *Handler) logError(c echo.Context, profileID string) error {
	var req logErrorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid error payload")
	}
	if req.LessonID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lessonId is required")
	}

	entry := entities.ErrorEntry{
		LessonID: req.LessonID,
		Sentence: entities.SentencePair{
			Russian: req.Russian,
			English: req.English,
		},
		Errors: req.Errors,
	}

	if err := h.analyticsService.LogError(c.Request().Context(), profileID, entry); err != nil {
		return h.internalError(c, "log error", err)
	}

	return c.NoContent(http.StatusCreated)
}
