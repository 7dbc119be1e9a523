package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/learnquest/internal/usecase"
)

func (h *Handler) ListStudyActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStudyActivity")
	defer span.End()

	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if err := h.validateRequest(ctx, userQuery{UserID: userID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	days, err := h.activityService.ListLastYear(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list study activity failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]studyDayDTO, 0, len(days))
	for _, day := range days {
		items = append(items, studyDayToDTO(day))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) LogStudyTime(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LogStudyTime")
	defer span.End()

	var req logStudyTimeRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	day, err := h.activityService.Log(ctx, usecase.LogStudyTimeInput{
		UserID:  req.UserID,
		Date:    req.Date,
		Minutes: req.Minutes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "log study time failed", "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, studyDayToDTO(day))
}
