package leaderboard

import "time"

type RankChange string

const (
	RankChangeUp   RankChange = "up"
	RankChangeDown RankChange = "down"
	RankChangeSame RankChange = "same"
	// RankChangeNone is reported for entries that have never been ranked.
	RankChangeNone RankChange = ""
)

// Entry is one learner's row on the global coin leaderboard.
type Entry struct {
	ID           string
	UserID       string
	Name         string
	Coins        int64
	Points       int64
	PreviousRank *int
	CurrentRank  *int
	RankChange   RankChange
	LastUpdated  time.Time
}

// RankUpdate carries the rank bookkeeping written back after a recomputation.
type RankUpdate struct {
	ID           string
	CurrentRank  int
	PreviousRank int
	RankChange   RankChange
}
