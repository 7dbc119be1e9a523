package postgres

import (
	"strconv"
	"strings"
	"testing"

	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
)

func rankUpdates(n int) []leaderboard.RankUpdate {
	out := make([]leaderboard.RankUpdate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, leaderboard.RankUpdate{
			ID:           "lb-" + strconv.Itoa(i+1),
			CurrentRank:  i + 1,
			PreviousRank: i + 1,
			RankChange:   leaderboard.RankChangeSame,
		})
	}
	return out
}

func TestChunkRankUpdates(t *testing.T) {
	chunks := chunkRankUpdates(rankUpdates(7), 3)
	if len(chunks) != 3 {
		t.Fatalf("unexpected chunk count: %d", len(chunks))
	}
	if len(chunks[0]) != 3 || len(chunks[1]) != 3 || len(chunks[2]) != 1 {
		t.Fatalf("unexpected chunk sizes: %d %d %d", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}
	if chunks[2][0].CurrentRank != 7 {
		t.Fatalf("last chunk holds rank %d", chunks[2][0].CurrentRank)
	}
}

func TestChunkRankUpdates_ExactMultiple(t *testing.T) {
	chunks := chunkRankUpdates(rankUpdates(4), 2)
	if len(chunks) != 2 {
		t.Fatalf("unexpected chunk count: %d", len(chunks))
	}
}

func TestBuildRankUpdateQuery(t *testing.T) {
	query, args := buildRankUpdateQuery([]leaderboard.RankUpdate{
		{ID: "lb-1", CurrentRank: 1, PreviousRank: 1, RankChange: leaderboard.RankChangeUp},
		{ID: "lb-2", CurrentRank: 2, PreviousRank: 2, RankChange: leaderboard.RankChangeNone},
	})

	if !strings.HasPrefix(query, "UPDATE leaderboard_entries AS l") {
		t.Fatalf("unexpected query prefix: %s", query)
	}
	if !strings.Contains(query, "($1::text, $2::int, $3::int, $4::text), ($5::text, $6::int, $7::int, $8::text)") {
		t.Fatalf("unexpected values list: %s", query)
	}
	if !strings.HasSuffix(query, "WHERE l.id = v.id") {
		t.Fatalf("unexpected query suffix: %s", query)
	}

	want := []any{"lb-1", 1, 1, "up", "lb-2", 2, 2, ""}
	if len(args) != len(want) {
		t.Fatalf("unexpected arg count: %d", len(args))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: want %v got %v", i, want[i], args[i])
		}
	}
}

func TestNewLeaderboardRepository_Defaults(t *testing.T) {
	repo := NewLeaderboardRepository(nil, 0, -1)
	if repo.chunkSize != defaultRankChunkSize || repo.workers != defaultRankWorkers {
		t.Fatalf("unexpected defaults: chunk=%d workers=%d", repo.chunkSize, repo.workers)
	}
}

func TestCoinsConflictSuffix(t *testing.T) {
	increment := coinsConflictSuffix(coinsIncrementExpr)
	if !strings.Contains(increment, "coins = leaderboard_entries.coins + EXCLUDED.coins,") {
		t.Fatalf("increment must add to the stored total: %s", increment)
	}

	set := coinsConflictSuffix(coinsSetExpr)
	if !strings.Contains(set, "coins = EXCLUDED.coins,") {
		t.Fatalf("set must replace the stored total: %s", set)
	}

	for _, suffix := range []string{increment, set} {
		if !strings.HasPrefix(suffix, "ON CONFLICT (user_id)") || !strings.HasSuffix(suffix, "RETURNING *") {
			t.Fatalf("unexpected suffix: %s", suffix)
		}
	}
}
