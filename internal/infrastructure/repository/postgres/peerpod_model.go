package postgres

import "time"

type postTableModel struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	UserName   string    `db:"user_name"`
	UserImage  string    `db:"user_image"`
	BadgeImage string    `db:"badge_image"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type postLikeTableModel struct {
	PostID    string    `db:"post_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type postCommentTableModel struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	UserID    string    `db:"user_id"`
	UserName  string    `db:"user_name"`
	UserImage string    `db:"user_image"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
