package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/gamification"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/memory"
	leaderboardmock "github.com/riskibarqy/learnquest/internal/mocks/domain/leaderboard"
	profilemock "github.com/riskibarqy/learnquest/internal/mocks/domain/profile"
	"github.com/stretchr/testify/mock"
)

func newMemoryProfileService(events gamification.Publisher) (*ProfileService, *memory.LeaderboardRepository) {
	lb := memory.NewLeaderboardRepository(nil)
	return NewProfileService(memory.NewProfileRepository(), lb, &sequenceIDGenerator{}, events, nil), lb
}

func TestProfileService_Create_IsIdempotent(t *testing.T) {
	service, _ := newMemoryProfileService(nil)

	first, created, err := service.Create(t.Context(), CreateProfileInput{UserID: "u1", Name: "Ada", ProfileImage: "https://img.example/ada.png"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if !created || first.Coins != 0 {
		t.Fatalf("unexpected first create: created=%v profile=%+v", created, first)
	}

	second, created, err := service.Create(t.Context(), CreateProfileInput{UserID: "u1", Name: "Other", ProfileImage: "https://img.example/x.png"})
	if err != nil {
		t.Fatalf("create profile again: %v", err)
	}
	if created || second.Name != "Ada" {
		t.Fatalf("expected existing profile, got created=%v profile=%+v", created, second)
	}
}

func TestProfileService_AwardCoins_MirrorsLeaderboard(t *testing.T) {
	events := &recordingPublisher{}
	service, lb := newMemoryProfileService(events)

	if _, _, err := service.Create(t.Context(), CreateProfileInput{UserID: "u1", Name: "Ada", ProfileImage: "https://img.example/ada.png"}); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if _, err := service.AwardCoins(t.Context(), "u1", 40); err != nil {
		t.Fatalf("award coins: %v", err)
	}
	updated, err := service.AwardCoins(t.Context(), "u1", 2)
	if err != nil {
		t.Fatalf("award coins: %v", err)
	}
	if updated.Coins != 42 {
		t.Fatalf("unexpected coins: %d", updated.Coins)
	}

	entry, exists, err := lb.GetByUserID(t.Context(), "u1")
	if err != nil || !exists {
		t.Fatalf("expected leaderboard entry, exists=%v err=%v", exists, err)
	}
	if entry.Coins != 42 || entry.Name != "Ada" {
		t.Fatalf("unexpected leaderboard entry: %+v", entry)
	}

	published := events.snapshot()
	if len(published) != 2 || published[1].Type != gamification.EventCoinsAwarded || published[1].NewScore != 42 {
		t.Fatalf("unexpected events: %+v", published)
	}
}

func TestProfileService_AwardCoins_ConcurrentAwardsKeepTotalsEqual(t *testing.T) {
	service, lb := newMemoryProfileService(nil)
	if _, _, err := service.Create(t.Context(), CreateProfileInput{UserID: "u1", Name: "Ada", ProfileImage: "https://img.example/ada.png"}); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	const awards = 20
	var wg sync.WaitGroup
	errs := make(chan error, awards)
	for range awards {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.AwardCoins(t.Context(), "u1", 5); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("award coins: %v", err)
	}

	got, err := service.Get(t.Context(), "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	entry, exists, err := lb.GetByUserID(t.Context(), "u1")
	if err != nil || !exists {
		t.Fatalf("expected leaderboard entry, exists=%v err=%v", exists, err)
	}
	if got.Coins != awards*5 || entry.Coins != got.Coins {
		t.Fatalf("totals diverged: profile=%d leaderboard=%d", got.Coins, entry.Coins)
	}
}

func TestProfileService_AwardCoins_IncrementsLeaderboardUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profiles := profilemock.NewRepository(t)
	lb := leaderboardmock.NewRepository(t)
	service := NewProfileService(profiles, lb, &sequenceIDGenerator{}, nil, nil)
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	profiles.
		On("AddCoins", ctx, "u1", int64(10), now).
		Return(profile.Profile{UserID: "u1", Name: "Ada", Coins: 130}, true, nil).
		Once()
	lb.
		On("IncrementCoins", ctx, mock.MatchedBy(func(e leaderboard.Entry) bool {
			return e.UserID == "u1" && e.Name == "Ada" && e.ID != ""
		}), int64(10)).
		Return(leaderboard.Entry{UserID: "u1", Coins: 130}, nil).
		Once()

	got, err := service.AwardCoins(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("award coins: %v", err)
	}
	if got.Coins != 130 {
		t.Fatalf("unexpected coins: %d", got.Coins)
	}
	lb.AssertNotCalled(t, "UpsertCoins", mock.Anything, mock.Anything)
}

func TestProfileService_AwardCoins_Validation(t *testing.T) {
	service, _ := newMemoryProfileService(nil)

	for _, amount := range []int64{0, -5, maxCoinAward + 1} {
		if _, err := service.AwardCoins(t.Context(), "u1", amount); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("amount %d: expected ErrInvalidInput, got %v", amount, err)
		}
	}
	if _, err := service.AwardCoins(t.Context(), "missing", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileService_Update_CoinsSyncLeaderboardUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profiles := profilemock.NewRepository(t)
	lb := leaderboardmock.NewRepository(t)
	service := NewProfileService(profiles, lb, &sequenceIDGenerator{}, nil, nil)
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	coins := int64(75)
	profiles.
		On("Upsert", ctx, "u1", mock.MatchedBy(func(c profile.Changes) bool {
			return c.Coins != nil && *c.Coins == coins && c.Name == nil
		}), now).
		Return(profile.Profile{UserID: "u1", Name: "Ada", Coins: coins}, nil).
		Once()
	lb.
		On("UpsertCoins", ctx, mock.MatchedBy(func(e leaderboard.Entry) bool {
			return e.UserID == "u1" && e.Coins == coins && e.ID != ""
		})).
		Return(leaderboard.Entry{UserID: "u1", Coins: coins}, nil).
		Once()

	got, err := service.Update(ctx, UpdateProfileInput{UserID: "u1", Coins: &coins})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if got.Coins != coins {
		t.Fatalf("unexpected coins: %d", got.Coins)
	}
}

func TestProfileService_Update_NameOnlySkipsLeaderboardUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profiles := profilemock.NewRepository(t)
	lb := leaderboardmock.NewRepository(t)
	service := NewProfileService(profiles, lb, &sequenceIDGenerator{}, nil, nil)

	name := "  Grace  "
	profiles.
		On("Upsert", ctx, "u1", mock.MatchedBy(func(c profile.Changes) bool {
			return c.Name != nil && *c.Name == "Grace"
		}), mock.Anything).
		Return(profile.Profile{UserID: "u1", Name: "Grace"}, nil).
		Once()

	if _, err := service.Update(ctx, UpdateProfileInput{UserID: "u1", Name: &name}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	lb.AssertNotCalled(t, "UpsertCoins", mock.Anything, mock.Anything)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	service, _ := newMemoryProfileService(nil)

	if _, err := service.Get(t.Context(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Get(t.Context(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
