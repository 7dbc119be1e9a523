package leaderboard

import (
	"sort"
	"time"
)

// Recompute ranks entries by coins, highest first. Equal coin totals keep
// their input order. Each returned entry carries its new CurrentRank, the
// PreviousRank it was compared against and the resulting RankChange.
//
// The returned updates store the new rank as PreviousRank so the next
// recomputation classifies movement relative to this one.
func Recompute(entries []Entry, now time.Time) ([]Entry, []RankUpdate) {
	if len(entries) == 0 {
		return []Entry{}, nil
	}

	ranked := append([]Entry(nil), entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Coins > ranked[j].Coins
	})

	updates := make([]RankUpdate, 0, len(ranked))
	for i := range ranked {
		newRank := i + 1
		change := ResolveRankChange(newRank, ranked[i].PreviousRank)

		ranked[i].CurrentRank = intPtr(newRank)
		ranked[i].RankChange = change
		ranked[i].LastUpdated = now

		updates = append(updates, RankUpdate{
			ID:           ranked[i].ID,
			CurrentRank:  newRank,
			PreviousRank: newRank,
			RankChange:   change,
		})
	}

	return ranked, updates
}

func ResolveRankChange(newRank int, previousRank *int) RankChange {
	if previousRank == nil || *previousRank <= 0 {
		return RankChangeNone
	}
	if newRank < *previousRank {
		return RankChangeUp
	}
	if newRank > *previousRank {
		return RankChangeDown
	}
	return RankChangeSame
}

func intPtr(v int) *int {
	return &v
}
