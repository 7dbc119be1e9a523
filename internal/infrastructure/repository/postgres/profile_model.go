package postgres

import "time"

type profileTableModel struct {
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	ProfileImage string    `db:"profile_image"`
	Coins        int64     `db:"coins"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
