package postgres

import (
	"database/sql"
	"time"
)

type leaderboardTableModel struct {
	ID           string        `db:"id"`
	UserID       string        `db:"user_id"`
	Name         string        `db:"name"`
	Coins        int64         `db:"coins"`
	Points       int64         `db:"points"`
	PreviousRank sql.NullInt32 `db:"previous_rank"`
	CurrentRank  sql.NullInt32 `db:"current_rank"`
	RankChange   string        `db:"rank_change"`
	LastUpdated  time.Time     `db:"last_updated"`
	CreatedAt    time.Time     `db:"created_at"`
}

type leaderboardInsertModel struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name,omitempty"`
	Coins       int64     `db:"coins"`
	LastUpdated time.Time `db:"last_updated"`
}
