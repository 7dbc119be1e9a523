package breaker

import (
	"context"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/platform/resilience"
)

// LeaderboardRepository fails fast with resilience.ErrCircuitOpen while the
// backing store keeps erroring.
type LeaderboardRepository struct {
	next    leaderboard.Repository
	breaker *resilience.CircuitBreaker
}

func NewLeaderboardRepository(next leaderboard.Repository, breaker *resilience.CircuitBreaker) *LeaderboardRepository {
	return &LeaderboardRepository{next: next, breaker: breaker}
}

func (r *LeaderboardRepository) ListAll(ctx context.Context) ([]leaderboard.Entry, error) {
	var out []leaderboard.Entry
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.ListAll(ctx)
		return err
	})
	return out, err
}

func (r *LeaderboardRepository) BulkWriteRanks(ctx context.Context, updates []leaderboard.RankUpdate) error {
	return r.breaker.Execute(ctx, func(ctx context.Context) error {
		return r.next.BulkWriteRanks(ctx, updates)
	})
}

func (r *LeaderboardRepository) GetByUserID(ctx context.Context, userID string) (leaderboard.Entry, bool, error) {
	var (
		out    leaderboard.Entry
		exists bool
	)
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, exists, err = r.next.GetByUserID(ctx, userID)
		return err
	})
	return out, exists, err
}

func (r *LeaderboardRepository) UpsertCoins(ctx context.Context, entry leaderboard.Entry) (leaderboard.Entry, error) {
	var out leaderboard.Entry
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.UpsertCoins(ctx, entry)
		return err
	})
	return out, err
}

func (r *LeaderboardRepository) IncrementCoins(ctx context.Context, entry leaderboard.Entry, delta int64) (leaderboard.Entry, error) {
	var out leaderboard.Entry
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.IncrementCoins(ctx, entry, delta)
		return err
	})
	return out, err
}

type BadgeRepository struct {
	next    badge.Repository
	breaker *resilience.CircuitBreaker
}

func NewBadgeRepository(next badge.Repository, breaker *resilience.CircuitBreaker) *BadgeRepository {
	return &BadgeRepository{next: next, breaker: breaker}
}

func (r *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]badge.Badge, error) {
	var out []badge.Badge
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.next.ListByUser(ctx, userID)
		return err
	})
	return out, err
}

func (r *BadgeRepository) InsertMany(ctx context.Context, userID string, badges []badge.Badge) error {
	return r.breaker.Execute(ctx, func(ctx context.Context) error {
		return r.next.InsertMany(ctx, userID, badges)
	})
}

func (r *BadgeRepository) Get(ctx context.Context, userID string, badgeID int) (badge.Badge, bool, error) {
	return r.guardBadge(ctx, func(ctx context.Context) (badge.Badge, bool, error) {
		return r.next.Get(ctx, userID, badgeID)
	})
}

func (r *BadgeRepository) ApplyPatch(ctx context.Context, userID string, badgeID int, patch badge.Patch, earnedAt time.Time) (badge.Badge, bool, error) {
	return r.guardBadge(ctx, func(ctx context.Context) (badge.Badge, bool, error) {
		return r.next.ApplyPatch(ctx, userID, badgeID, patch, earnedAt)
	})
}

func (r *BadgeRepository) IncrementProgress(ctx context.Context, userID string, badgeID int, delta int) (badge.Badge, bool, error) {
	return r.guardBadge(ctx, func(ctx context.Context) (badge.Badge, bool, error) {
		return r.next.IncrementProgress(ctx, userID, badgeID, delta)
	})
}

func (r *BadgeRepository) guardBadge(ctx context.Context, fn func(context.Context) (badge.Badge, bool, error)) (badge.Badge, bool, error) {
	var (
		out    badge.Badge
		exists bool
	)
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, exists, err = fn(ctx)
		return err
	})
	return out, exists, err
}
