package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/profile"
	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/memory"
)

type countingProfileRepo struct {
	*memory.ProfileRepository
	reads atomic.Int32
}

func (r *countingProfileRepo) GetByUserID(ctx context.Context, userID string) (profile.Profile, bool, error) {
	r.reads.Add(1)
	return r.ProfileRepository.GetByUserID(ctx, userID)
}

func TestProfileRepository_CachesReadsAndEvictsOnWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	next := &countingProfileRepo{ProfileRepository: memory.NewProfileRepository()}
	repo := NewProfileRepository(next, time.Minute)

	if _, _, err := repo.Create(ctx, profile.Profile{UserID: "u1", Name: "Ada", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, exists, err := repo.GetByUserID(ctx, "u1")
		if err != nil || !exists || got.Name != "Ada" {
			t.Fatalf("unexpected read #%d: %+v exists=%v err=%v", i+1, got, exists, err)
		}
	}
	if got := next.reads.Load(); got != 1 {
		t.Fatalf("expected one backing read, got %d", got)
	}

	if _, _, err := repo.AddCoins(ctx, "u1", 10, now); err != nil {
		t.Fatalf("add coins: %v", err)
	}
	got, _, err := repo.GetByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("read after write: %v", err)
	}
	if got.Coins != 10 {
		t.Fatalf("expected fresh coins after eviction, got %d", got.Coins)
	}
	if reads := next.reads.Load(); reads != 2 {
		t.Fatalf("expected a second backing read after eviction, got %d", reads)
	}
}

func TestProfileRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingProfileRepo{ProfileRepository: memory.NewProfileRepository()}
	repo := NewProfileRepository(next, time.Minute)

	for i := 0; i < 2; i++ {
		if _, exists, err := repo.GetByUserID(ctx, "ghost"); err != nil || exists {
			t.Fatalf("expected miss, got exists=%v err=%v", exists, err)
		}
	}
	if got := next.reads.Load(); got != 1 {
		t.Fatalf("expected cached miss, got %d backing reads", got)
	}
}
