package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/learnquest/internal/usecase"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if err := h.validateRequest(ctx, userQuery{UserID: userID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.profileService.Get(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(ctx, item))
}

func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateProfile")
	defer span.End()

	var req createProfileRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, created, err := h.profileService.Create(ctx, usecase.CreateProfileInput{
		UserID:       req.UserID,
		Name:         req.Name,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create profile failed", "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, profileToDTO(ctx, item))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateProfile")
	defer span.End()

	var req updateProfileRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.profileService.Update(ctx, usecase.UpdateProfileInput{
		UserID:       req.UserID,
		Name:         req.Name,
		ProfileImage: req.ProfileImage,
		Coins:        req.Coins,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update profile failed", "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(ctx, item))
}

func (h *Handler) AwardCoins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AwardCoins")
	defer span.End()

	var req awardCoinsRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.profileService.AwardCoins(ctx, req.UserID, req.Amount)
	if err != nil {
		h.logger.WarnContext(ctx, "award coins failed", "user_id", req.UserID, "amount", req.Amount, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(ctx, item))
}
