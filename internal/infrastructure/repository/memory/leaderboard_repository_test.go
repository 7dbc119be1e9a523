package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
)

func TestLeaderboardRepository_BulkWriteRanks(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewLeaderboardRepository(SeedLeaderboard(now))

	entries, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	_, updates := leaderboard.Recompute(entries, now)
	if err := repo.BulkWriteRanks(t.Context(), updates); err != nil {
		t.Fatalf("write ranks: %v", err)
	}

	top, exists, err := repo.GetByUserID(t.Context(), "demo-ayu")
	if err != nil || !exists {
		t.Fatalf("expected demo-ayu, exists=%v err=%v", exists, err)
	}
	if top.CurrentRank == nil || *top.CurrentRank != 1 || *top.PreviousRank != 1 {
		t.Fatalf("unexpected stored ranks: %+v", top)
	}

	if err := repo.BulkWriteRanks(t.Context(), []leaderboard.RankUpdate{{ID: "missing", CurrentRank: 1}}); err == nil {
		t.Fatalf("expected error for unknown entry")
	}
}

func TestLeaderboardRepository_UpsertCoins(t *testing.T) {
	repo := NewLeaderboardRepository(nil)
	now := time.Now().UTC()

	created, err := repo.UpsertCoins(t.Context(), leaderboard.Entry{ID: "lb-1", UserID: "u1", Name: "Ada", Coins: 10, LastUpdated: now})
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if created.ID != "lb-1" {
		t.Fatalf("unexpected id: %s", created.ID)
	}

	updated, err := repo.UpsertCoins(t.Context(), leaderboard.Entry{ID: "ignored", UserID: "u1", Coins: 25, LastUpdated: now})
	if err != nil {
		t.Fatalf("update entry: %v", err)
	}
	if updated.ID != "lb-1" || updated.Coins != 25 || updated.Name != "Ada" {
		t.Fatalf("unexpected updated entry: %+v", updated)
	}

	all, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one entry, got %d", len(all))
	}
}

func TestLeaderboardRepository_IncrementCoins(t *testing.T) {
	repo := NewLeaderboardRepository(nil)
	now := time.Now().UTC()

	created, err := repo.IncrementCoins(t.Context(), leaderboard.Entry{ID: "lb-1", UserID: "u1", Name: "Ada", LastUpdated: now}, 10)
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if created.ID != "lb-1" || created.Coins != 10 {
		t.Fatalf("unexpected created entry: %+v", created)
	}

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementCoins(t.Context(), leaderboard.Entry{ID: "ignored", UserID: "u1", LastUpdated: now}, 2); err != nil {
				t.Errorf("increment: %v", err)
			}
		}()
	}
	wg.Wait()

	got, exists, err := repo.GetByUserID(t.Context(), "u1")
	if err != nil || !exists {
		t.Fatalf("expected entry, exists=%v err=%v", exists, err)
	}
	if got.ID != "lb-1" || got.Coins != 110 || got.Name != "Ada" {
		t.Fatalf("unexpected entry after increments: %+v", got)
	}
}
