package profile

import (
	"context"
	"time"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (Profile, bool, error)
	// Create inserts the profile unless one exists for the user; the stored profile is returned.
	Create(ctx context.Context, p Profile) (Profile, bool, error)
	// Upsert applies changes, creating the profile when missing.
	Upsert(ctx context.Context, userID string, changes Changes, now time.Time) (Profile, error)
	AddCoins(ctx context.Context, userID string, amount int64, now time.Time) (Profile, bool, error)
}
