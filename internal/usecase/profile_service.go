package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/gamification"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
	idgen "github.com/riskibarqy/learnquest/internal/platform/id"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
)

const maxCoinAward = 1000

type ProfileService struct {
	profiles    profile.Repository
	leaderboard leaderboard.Repository
	idGen       idgen.Generator
	events      gamification.Publisher
	logger      *logging.Logger
	now         func() time.Time
}

func NewProfileService(
	profiles profile.Repository,
	leaderboardRepo leaderboard.Repository,
	idGen idgen.Generator,
	events gamification.Publisher,
	logger *logging.Logger,
) *ProfileService {
	if events == nil {
		events = gamification.NopPublisher{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ProfileService{
		profiles:    profiles,
		leaderboard: leaderboardRepo,
		idGen:       idGen,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

type CreateProfileInput struct {
	UserID       string
	Name         string
	ProfileImage string
}

type UpdateProfileInput struct {
	UserID       string
	Name         *string
	ProfileImage *string
	Coins        *int64
}

// Create stores a new profile. When one already exists it is returned with created=false.
func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (profile.Profile, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Create", input.UserID)
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	input.ProfileImage = strings.TrimSpace(input.ProfileImage)
	if input.UserID == "" || input.Name == "" || input.ProfileImage == "" {
		return profile.Profile{}, false, fmt.Errorf("%w: user id, name and profile image are required", ErrInvalidInput)
	}

	now := s.now().UTC()
	stored, created, err := s.profiles.Create(ctx, profile.Profile{
		UserID:       input.UserID,
		Name:         input.Name,
		ProfileImage: input.ProfileImage,
		Coins:        0,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("create profile user=%s: %w", input.UserID, err)
	}

	return stored, created, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Get", userID)
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("get profile user=%s: %w", userID, err)
	}
	if !exists {
		return profile.Profile{}, fmt.Errorf("%w: profile user=%s", ErrNotFound, userID)
	}

	return item, nil
}

// Update applies a partial change, creating the profile when missing. A coin
// total set here is mirrored onto the leaderboard.
func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Update", input.UserID)
	defer span.End()

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return profile.Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Coins != nil && *input.Coins < 0 {
		return profile.Profile{}, fmt.Errorf("%w: coins must be >= 0", ErrInvalidInput)
	}

	changes := profile.Changes{
		Name:         trimmedPtr(input.Name),
		ProfileImage: trimmedPtr(input.ProfileImage),
		Coins:        input.Coins,
	}
	if changes.Name != nil && *changes.Name == "" {
		return profile.Profile{}, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	updated, err := s.profiles.Upsert(ctx, userID, changes, s.now().UTC())
	if err != nil {
		return profile.Profile{}, fmt.Errorf("update profile user=%s: %w", userID, err)
	}

	if input.Coins != nil {
		if err := s.syncLeaderboard(ctx, updated); err != nil {
			return profile.Profile{}, err
		}
	}

	return updated, nil
}

// AwardCoins adds coins to an existing profile and the same amount to the
// user's leaderboard entry, creating the entry on the first award.
func (s *ProfileService) AwardCoins(ctx context.Context, userID string, amount int64) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.AwardCoins", userID)
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if amount <= 0 || amount > maxCoinAward {
		return profile.Profile{}, fmt.Errorf("%w: amount must be between 1 and %d", ErrInvalidInput, maxCoinAward)
	}

	now := s.now().UTC()
	updated, exists, err := s.profiles.AddCoins(ctx, userID, amount, now)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("add coins user=%s: %w", userID, err)
	}
	if !exists {
		return profile.Profile{}, fmt.Errorf("%w: profile user=%s", ErrNotFound, userID)
	}

	entry, err := s.leaderboardEntry(updated)
	if err != nil {
		return profile.Profile{}, err
	}
	if _, err := s.leaderboard.IncrementCoins(ctx, entry, amount); err != nil {
		return profile.Profile{}, fmt.Errorf("increment leaderboard coins user=%s: %w", userID, err)
	}

	s.events.Publish(ctx, gamification.Event{
		Type:      gamification.EventCoinsAwarded,
		UserID:    userID,
		Points:    amount,
		NewScore:  updated.Coins,
		Timestamp: now,
	})

	return updated, nil
}

func (s *ProfileService) syncLeaderboard(ctx context.Context, p profile.Profile) error {
	entry, err := s.leaderboardEntry(p)
	if err != nil {
		return err
	}
	if _, err := s.leaderboard.UpsertCoins(ctx, entry); err != nil {
		return fmt.Errorf("upsert leaderboard coins user=%s: %w", p.UserID, err)
	}
	return nil
}

// leaderboardEntry mirrors p into an entry. The id is only used when the
// user has no entry yet.
func (s *ProfileService) leaderboardEntry(p profile.Profile) (leaderboard.Entry, error) {
	entryID, err := s.idGen.NewID()
	if err != nil {
		return leaderboard.Entry{}, fmt.Errorf("generate leaderboard entry id: %w", err)
	}
	return leaderboard.Entry{
		ID:          entryID,
		UserID:      p.UserID,
		Name:        p.Name,
		Coins:       p.Coins,
		LastUpdated: s.now().UTC(),
	}, nil
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	out := strings.TrimSpace(*v)
	return &out
}
