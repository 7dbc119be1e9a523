package badge

import (
	"context"
	"time"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Badge, error)
	// InsertMany creates badges, skipping any (userID, badgeID) pair that already exists.
	InsertMany(ctx context.Context, userID string, badges []Badge) error
	Get(ctx context.Context, userID string, badgeID int) (Badge, bool, error)
	// ApplyPatch updates the badge in a single atomic step and returns the
	// state it had before the update. EarnedDate is written with earnedAt
	// only if the stored badge was not yet earned.
	ApplyPatch(ctx context.Context, userID string, badgeID int, patch Patch, earnedAt time.Time) (Badge, bool, error)
	// IncrementProgress atomically adds delta to progress, clamped to [0, total],
	// and returns the updated badge.
	IncrementProgress(ctx context.Context, userID string, badgeID int, delta int) (Badge, bool, error)
}
