package peerpod

import "time"

type Post struct {
	ID         string
	UserID     string
	UserName   string
	UserImage  string
	BadgeImage string
	Content    string
	Likes      []string
	Comments   []Comment
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Comment struct {
	ID        string
	UserID    string
	UserName  string
	UserImage string
	Content   string
	CreatedAt time.Time
}

// PageRequest is a 1-based page of posts, newest first.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page struct {
	Items []Post
	Total int64
	Page  int
	Limit int
	Pages int
}

func (p Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
