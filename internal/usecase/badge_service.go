package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"github.com/riskibarqy/learnquest/internal/domain/gamification"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
)

type BadgeService struct {
	repo    badge.Repository
	catalog badge.Catalog
	events  gamification.Publisher
	logger  *logging.Logger
	now     func() time.Time
}

func NewBadgeService(repo badge.Repository, catalog badge.Catalog, events gamification.Publisher, logger *logging.Logger) *BadgeService {
	if events == nil {
		events = gamification.NopPublisher{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &BadgeService{
		repo:    repo,
		catalog: catalog,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

type ApplyBadgeUpdateInput struct {
	UserID     string
	BadgeID    int
	Progress   *int
	Earned     *bool
	EarnedDate *time.Time
}

type AddBadgeProgressInput struct {
	UserID  string
	BadgeID int
	Delta   int
}

// EnsureCatalog returns the user's badges, materializing the catalog on first access.
// A user that already has badges keeps the set it was given.
func (s *BadgeService) EnsureCatalog(ctx context.Context, userID string) ([]badge.Badge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BadgeService.EnsureCatalog")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list badges user=%s: %w", userID, err)
	}
	if len(items) > 0 {
		return items, nil
	}

	fresh := s.catalog.Materialize(userID, s.now().UTC())
	if err := s.repo.InsertMany(ctx, userID, fresh); err != nil {
		return nil, fmt.Errorf("materialize badges user=%s: %w", userID, err)
	}
	s.logger.InfoContext(ctx, "badge catalog materialized", "user_id", userID, "badges", len(fresh))

	items, err = s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list badges user=%s: %w", userID, err)
	}
	return items, nil
}

func (s *BadgeService) ApplyUpdate(ctx context.Context, input ApplyBadgeUpdateInput) (badge.Badge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BadgeService.ApplyUpdate", input.UserID)
	defer span.End()

	userID, err := validateBadgeKey(input.UserID, input.BadgeID)
	if err != nil {
		return badge.Badge{}, err
	}
	if input.Progress != nil && *input.Progress < 0 {
		return badge.Badge{}, fmt.Errorf("%w: progress must be >= 0", ErrInvalidInput)
	}

	patch := badge.Patch{
		Progress:   input.Progress,
		Earned:     input.Earned,
		EarnedDate: input.EarnedDate,
	}
	now := s.now().UTC()
	if patch.IsEmpty() {
		return s.get(ctx, userID, input.BadgeID)
	}

	earnedAt := now
	if input.EarnedDate != nil {
		earnedAt = input.EarnedDate.UTC()
	}

	prior, exists, err := s.repo.ApplyPatch(ctx, userID, input.BadgeID, patch, earnedAt)
	if err != nil {
		return badge.Badge{}, fmt.Errorf("update badge user=%s badge=%d: %w", userID, input.BadgeID, err)
	}
	if !exists {
		return badge.Badge{}, fmt.Errorf("%w: badge=%d user=%s", ErrNotFound, input.BadgeID, userID)
	}

	updated := badge.Apply(prior, patch, earnedAt)
	updated.UpdatedAt = now

	if badge.EarnedTransition(prior, patch) {
		s.logger.InfoContext(ctx, "badge earned", "user_id", userID, "badge_id", input.BadgeID)
		s.events.Publish(ctx, gamification.Event{
			Type:      gamification.EventBadgeEarned,
			UserID:    userID,
			BadgeID:   updated.BadgeID,
			BadgeName: updated.Name,
			Timestamp: now,
		})
	}

	return updated, nil
}

// AddProgress increments a badge counter. Progress never leaves [0, total] and
// the earned flag is not touched.
func (s *BadgeService) AddProgress(ctx context.Context, input AddBadgeProgressInput) (badge.Badge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BadgeService.AddProgress", input.UserID)
	defer span.End()

	userID, err := validateBadgeKey(input.UserID, input.BadgeID)
	if err != nil {
		return badge.Badge{}, err
	}
	if input.Delta == 0 {
		return badge.Badge{}, fmt.Errorf("%w: delta must not be zero", ErrInvalidInput)
	}

	updated, exists, err := s.repo.IncrementProgress(ctx, userID, input.BadgeID, input.Delta)
	if err != nil {
		return badge.Badge{}, fmt.Errorf("increment badge progress user=%s badge=%d: %w", userID, input.BadgeID, err)
	}
	if !exists {
		return badge.Badge{}, fmt.Errorf("%w: badge=%d user=%s", ErrNotFound, input.BadgeID, userID)
	}

	return updated, nil
}

func (s *BadgeService) get(ctx context.Context, userID string, badgeID int) (badge.Badge, error) {
	item, exists, err := s.repo.Get(ctx, userID, badgeID)
	if err != nil {
		return badge.Badge{}, fmt.Errorf("get badge user=%s badge=%d: %w", userID, badgeID, err)
	}
	if !exists {
		return badge.Badge{}, fmt.Errorf("%w: badge=%d user=%s", ErrNotFound, badgeID, userID)
	}
	return item, nil
}

func validateBadgeKey(userID string, badgeID int) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if badgeID <= 0 {
		return "", fmt.Errorf("%w: badge id must be > 0", ErrInvalidInput)
	}
	return userID, nil
}
