package leaderboard

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Entry, error)
	BulkWriteRanks(ctx context.Context, updates []RankUpdate) error
	GetByUserID(ctx context.Context, userID string) (Entry, bool, error)
	// UpsertCoins sets the coin total of the user's entry, creating the entry on first use.
	UpsertCoins(ctx context.Context, entry Entry) (Entry, error)
	// IncrementCoins adds delta to the user's coin total in one atomic write.
	// A missing entry is created with delta coins.
	IncrementCoins(ctx context.Context, entry Entry, delta int64) (Entry, error)
}
