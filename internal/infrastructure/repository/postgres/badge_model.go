package postgres

import (
	"database/sql"
	"time"
)

type badgeTableModel struct {
	UserID      string       `db:"user_id"`
	BadgeID     int          `db:"badge_id"`
	Name        string       `db:"name"`
	Description string       `db:"description"`
	IconType    string       `db:"icon_type"`
	Earned      bool         `db:"earned"`
	EarnedDate  sql.NullTime `db:"earned_date"`
	Progress    int          `db:"progress"`
	Total       int          `db:"total"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}
