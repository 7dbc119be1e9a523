package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
	"github.com/riskibarqy/learnquest/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	leaderboardService *usecase.LeaderboardService
	badgeService       *usecase.BadgeService
	profileService     *usecase.ProfileService
	peerPodService     *usecase.PeerPodService
	activityService    *usecase.ActivityService
	events             http.Handler
	logger             *logging.Logger
	validator          *validator.Validate
}

type Services struct {
	Leaderboard *usecase.LeaderboardService
	Badges      *usecase.BadgeService
	Profiles    *usecase.ProfileService
	PeerPod     *usecase.PeerPodService
	Activity    *usecase.ActivityService
}

// NewHandler builds the HTTP handler. events serves the websocket feed and may be nil.
func NewHandler(services Services, events http.Handler, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leaderboardService: services.Leaderboard,
		badgeService:       services.Badges,
		profileService:     services.Profiles,
		peerPodService:     services.PeerPod,
		activityService:    services.Activity,
		events:             events,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
