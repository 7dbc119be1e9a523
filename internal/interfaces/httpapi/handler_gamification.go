package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/learnquest/internal/usecase"
)

func (h *Handler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboard")
	defer span.End()

	entries, err := h.leaderboardService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, leaderboardEntryToDTO(ctx, entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBadges")
	defer span.End()

	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if err := h.validateRequest(ctx, userQuery{UserID: userID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	badges, err := h.badgeService.EnsureCatalog(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list badges failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]badgeDTO, 0, len(badges))
	for _, b := range badges {
		items = append(items, badgeToDTO(ctx, b))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateBadge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateBadge")
	defer span.End()

	var req badgeUpdateRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.badgeService.ApplyUpdate(ctx, usecase.ApplyBadgeUpdateInput{
		UserID:     req.UserID,
		BadgeID:    req.BadgeID,
		Progress:   req.Progress,
		Earned:     req.Earned,
		EarnedDate: req.EarnedDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update badge failed", "user_id", req.UserID, "badge_id", req.BadgeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, badgeToDTO(ctx, item))
}

func (h *Handler) AddBadgeProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddBadgeProgress")
	defer span.End()

	var req badgeProgressRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.badgeService.AddProgress(ctx, usecase.AddBadgeProgressInput{
		UserID:  req.UserID,
		BadgeID: req.BadgeID,
		Delta:   req.Delta,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add badge progress failed", "user_id", req.UserID, "badge_id", req.BadgeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, badgeToDTO(ctx, item))
}
