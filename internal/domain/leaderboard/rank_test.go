package leaderboard

import (
	"testing"
	"time"
)

func rank(v int) *int {
	return &v
}

func TestRecompute_OrdersByCoinsDescending(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "a", Coins: 5},
		{ID: "b", Coins: 50},
		{ID: "c", Coins: 20},
	}

	ranked, updates := Recompute(entries, now)

	wantOrder := []string{"b", "c", "a"}
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Fatalf("position %d: want %s got %s", i, id, ranked[i].ID)
		}
		if *ranked[i].CurrentRank != i+1 {
			t.Fatalf("entry %s: want rank %d got %d", id, i+1, *ranked[i].CurrentRank)
		}
		if !ranked[i].LastUpdated.Equal(now) {
			t.Fatalf("entry %s: last updated not stamped", id)
		}
		if updates[i].ID != id || updates[i].PreviousRank != i+1 {
			t.Fatalf("unexpected update %d: %+v", i, updates[i])
		}
	}
	if entries[0].CurrentRank != nil {
		t.Fatalf("input slice must not be mutated")
	}
}

func TestRecompute_TiesKeepInputOrder(t *testing.T) {
	ranked, _ := Recompute([]Entry{
		{ID: "first", Coins: 10},
		{ID: "top", Coins: 99},
		{ID: "second", Coins: 10},
	}, time.Now())

	if ranked[1].ID != "first" || ranked[2].ID != "second" {
		t.Fatalf("tie order not stable: %s, %s", ranked[1].ID, ranked[2].ID)
	}
	if *ranked[1].CurrentRank != 2 || *ranked[2].CurrentRank != 3 {
		t.Fatalf("ties must receive distinct ranks")
	}
}

func TestRecompute_Empty(t *testing.T) {
	ranked, updates := Recompute(nil, time.Now())
	if ranked == nil || len(ranked) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", ranked)
	}
	if len(updates) != 0 {
		t.Fatalf("expected no updates, got %d", len(updates))
	}
}

func TestRecompute_ClassifiesAgainstPreviousRank(t *testing.T) {
	ranked, updates := Recompute([]Entry{
		{ID: "climber", Coins: 100, PreviousRank: rank(3)},
		{ID: "steady", Coins: 50, PreviousRank: rank(2)},
		{ID: "faller", Coins: 10, PreviousRank: rank(1)},
		{ID: "newcomer", Coins: 1},
	}, time.Now())

	want := map[string]RankChange{
		"climber":  RankChangeUp,
		"steady":   RankChangeSame,
		"faller":   RankChangeDown,
		"newcomer": RankChangeNone,
	}
	for i, entry := range ranked {
		if entry.RankChange != want[entry.ID] {
			t.Fatalf("entry %s: want %q got %q", entry.ID, want[entry.ID], entry.RankChange)
		}
		if updates[i].RankChange != entry.RankChange {
			t.Fatalf("entry %s: update carries %q", entry.ID, updates[i].RankChange)
		}
	}
}

func TestResolveRankChange(t *testing.T) {
	tests := []struct {
		name     string
		newRank  int
		previous *int
		want     RankChange
	}{
		{name: "never ranked", newRank: 1, previous: nil, want: RankChangeNone},
		{name: "zero previous", newRank: 1, previous: rank(0), want: RankChangeNone},
		{name: "moved up", newRank: 1, previous: rank(4), want: RankChangeUp},
		{name: "moved down", newRank: 4, previous: rank(1), want: RankChangeDown},
		{name: "unchanged", newRank: 2, previous: rank(2), want: RankChangeSame},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRankChange(tc.newRank, tc.previous); got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}
