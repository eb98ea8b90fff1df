package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/service"
)

// getDueLessons refreshes statuses first so the returned records carry a
// status consistent with their review date.
func (h *Handler) getDueLessons(c echo.Context, profileID string) error {
	ctx := c.Request().Context()

	if err := h.schedulerService.RefreshStatuses(ctx, profileID); err != nil {
		return h.internalError(c, "refresh statuses", err)
	}

	due, err := h.schedulerService.DueForReview(ctx, profileID)
	if err != nil {
		return h.internalError(c, "due for review", err)
	}
	if due == nil {
		due = []*entities.SpacedRepetitionInfo{}
	}

	return c.JSON(http.StatusOK, due)
}

func (h *Handler) getReviewSentences(c echo.Context, profileID string) error {
	sentences, err := h.reviewService.SentencesDueForReview(c.Request().Context(), profileID, c.QueryParam("lesson"))
	if err != nil {
		return h.internalError(c, "review sentences", err)
	}
	if sentences == nil {
		sentences = []service.ReviewSentence{}
	}

	return c.JSON(http.StatusOK, sentences)
}
