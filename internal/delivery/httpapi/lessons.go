package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/repository"
	"github.com/ruslingo/ruslingo/internal/service"
)

func (h *Handler) listLessons(c echo.Context) error {
	lessons, err := h.lessonService.List(c.Request().Context())
	if err != nil {
		return h.internalError(c, "list lessons", err)
	}

	return c.JSON(http.StatusOK, lessons)
}

func (h *Handler) getLesson(c echo.Context) error {
	lesson, err := h.lessonService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLessonNotFound) || errors.Is(err, repository.ErrInvalidLessonID) {
			return echo.NewHTTPError(http.StatusNotFound, "lesson not found")
		}

		return h.internalError(c, "get lesson", err)
	}

	return c.JSON(http.StatusOK, lesson)
}

func (h *Handler) updateLesson(c echo.Context, profileID string) error {
	var lesson entities.Lesson
	if err := c.Bind(&lesson); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lesson payload")
	}
	lesson.ID = c.Param("id")

	err := h.lessonService.Update(c.Request().Context(), profileID, &lesson)
	if err != nil {
		if errors.Is(err, service.ErrNotAllowed) {
			return echo.NewHTTPError(http.StatusForbidden, "admin only")
		}
		if errors.Is(err, repository.ErrInvalidLessonID) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lesson id")
		}

		return h.internalError(c, "update lesson", err)
	}

	return c.JSON(http.StatusOK, lesson)
}

// completeLesson handles the first-time completion path: the error count is
// taken from the profile's logged history and clean lessons are auto-hidden.
func (h *Handler) completeLesson(c echo.Context, profileID string) error {
	info, err := h.schedulerService.MarkLessonCompleted(c.Request().Context(), profileID, c.Param("id"))
	if err != nil {
		return h.internalError(c, "complete lesson", err)
	}

	return c.JSON(http.StatusOK, info)
}

type reviewLessonRequest struct {
	Errors int `json:"errors"`
}

// reviewLesson handles a completed review pass with the observed error count.
func (h *Handler) reviewLesson(c echo.Context, profileID string) error {
	var req reviewLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid review payload")
	}
	if req.Errors < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "errors must be non-negative")
	}

	info, err := h.schedulerService.RecordCompletion(c.Request().Context(), profileID, c.Param("id"), req.Errors)
	if err != nil {
		return h.internalError(c, "record completion", err)
	}

	return c.JSON(http.StatusOK, info)
}

type visibilityRequest struct {
	Hidden bool `json:"hidden"`
}

func (h *Handler) toggleVisibility(c echo.Context, profileID string) error {
	var req visibilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid visibility payload")
	}

	info, err := h.schedulerService.ToggleVisibility(c.Request().Context(), profileID, c.Param("id"), req.Hidden)
	if err != nil {
		return h.internalError(c, "toggle visibility", err)
	}

	return c.JSON(http.StatusOK, info)
}

func (h *Handler) getPrioritySentences(c echo.Context, profileID string) error {
	sentences, err := h.priorityService.Get(c.Request().Context(), profileID, c.Param("id"))
	if err != nil {
		return h.internalError(c, "get priority sentences", err)
	}

	return c.JSON(http.StatusOK, sentences)
}

func (h *Handler) refreshPrioritySentences(c echo.Context, profileID string) error {
	sentences, err := h.priorityService.Save(c.Request().Context(), profileID, c.Param("id"))
	if err != nil {
		return h.internalError(c, "refresh priority sentences", err)
	}

	return c.JSON(http.StatusOK, sentences)
}
