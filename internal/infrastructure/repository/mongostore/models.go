package mongostore

import (
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/activity"
	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/domain/peerpod"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
)

type leaderboardDoc struct {
	ID           string    `bson:"_id"`
	UserID       string    `bson:"userId"`
	Name         string    `bson:"name"`
	Coins        int64     `bson:"coins"`
	Points       int64     `bson:"points"`
	PreviousRank *int      `bson:"previousRank,omitempty"`
	CurrentRank  *int      `bson:"currentRank,omitempty"`
	RankChange   string    `bson:"rankChange,omitempty"`
	LastUpdated  time.Time `bson:"lastUpdated"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func (d leaderboardDoc) toDomain() leaderboard.Entry {
	return leaderboard.Entry{
		ID:           d.ID,
		UserID:       d.UserID,
		Name:         d.Name,
		Coins:        d.Coins,
		Points:       d.Points,
		PreviousRank: d.PreviousRank,
		CurrentRank:  d.CurrentRank,
		RankChange:   leaderboard.RankChange(d.RankChange),
		LastUpdated:  d.LastUpdated,
	}
}

type badgeDoc struct {
	UserID      string     `bson:"userId"`
	BadgeID     int        `bson:"badgeId"`
	Name        string     `bson:"name"`
	Description string     `bson:"description"`
	IconType    string     `bson:"iconType"`
	Earned      bool       `bson:"earned"`
	EarnedDate  *time.Time `bson:"earnedDate,omitempty"`
	Progress    int        `bson:"progress"`
	Total       int        `bson:"total"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

func newBadgeDoc(b badge.Badge) badgeDoc {
	return badgeDoc{
		UserID:      b.UserID,
		BadgeID:     b.BadgeID,
		Name:        b.Name,
		Description: b.Description,
		IconType:    b.IconType,
		Earned:      b.Earned,
		EarnedDate:  b.EarnedDate,
		Progress:    b.Progress,
		Total:       b.Total,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (d badgeDoc) toDomain() badge.Badge {
	out := badge.Badge{
		UserID:      d.UserID,
		BadgeID:     d.BadgeID,
		Name:        d.Name,
		Description: d.Description,
		IconType:    d.IconType,
		Earned:      d.Earned,
		Progress:    d.Progress,
		Total:       d.Total,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.EarnedDate != nil {
		at := d.EarnedDate.UTC()
		out.EarnedDate = &at
	}
	return out
}

type profileDoc struct {
	UserID       string    `bson:"_id"`
	Name         string    `bson:"name"`
	ProfileImage string    `bson:"profileImage"`
	Coins        int64     `bson:"coins"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func (d profileDoc) toDomain() profile.Profile {
	return profile.Profile{
		UserID:       d.UserID,
		Name:         d.Name,
		ProfileImage: d.ProfileImage,
		Coins:        d.Coins,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type commentDoc struct {
	ID        string    `bson:"id"`
	UserID    string    `bson:"userId"`
	UserName  string    `bson:"userName"`
	UserImage string    `bson:"userImage"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
}

type postDoc struct {
	ID         string       `bson:"_id"`
	UserID     string       `bson:"userId"`
	UserName   string       `bson:"userName"`
	UserImage  string       `bson:"userImage"`
	BadgeImage string       `bson:"badgeImage"`
	Content    string       `bson:"content"`
	Likes      []string     `bson:"likes"`
	Comments   []commentDoc `bson:"comments"`
	CreatedAt  time.Time    `bson:"createdAt"`
	UpdatedAt  time.Time    `bson:"updatedAt"`
}

func newPostDoc(p peerpod.Post) postDoc {
	comments := make([]commentDoc, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, newCommentDoc(c))
	}
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}
	return postDoc{
		ID:         p.ID,
		UserID:     p.UserID,
		UserName:   p.UserName,
		UserImage:  p.UserImage,
		BadgeImage: p.BadgeImage,
		Content:    p.Content,
		Likes:      likes,
		Comments:   comments,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func newCommentDoc(c peerpod.Comment) commentDoc {
	return commentDoc{
		ID:        c.ID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		UserImage: c.UserImage,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (d postDoc) toDomain() peerpod.Post {
	comments := make([]peerpod.Comment, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, peerpod.Comment{
			ID:        c.ID,
			UserID:    c.UserID,
			UserName:  c.UserName,
			UserImage: c.UserImage,
			Content:   c.Content,
			CreatedAt: c.CreatedAt.UTC(),
		})
	}
	likes := append([]string{}, d.Likes...)
	return peerpod.Post{
		ID:         d.ID,
		UserID:     d.UserID,
		UserName:   d.UserName,
		UserImage:  d.UserImage,
		BadgeImage: d.BadgeImage,
		Content:    d.Content,
		Likes:      likes,
		Comments:   comments,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

type studyDayDoc struct {
	UserID  string `bson:"userId"`
	Date    string `bson:"date"`
	Minutes int    `bson:"minutes"`
}

func (d studyDayDoc) toDomain() activity.Day {
	return activity.Day{UserID: d.UserID, Date: d.Date, Minutes: d.Minutes}
}
