package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/activity"
	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/domain/peerpod"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
)

type userQuery struct {
	UserID string `validate:"required"`
}

type badgeUpdateRequest struct {
	UserID     string     `json:"userId" validate:"required"`
	BadgeID    int        `json:"badgeId" validate:"required,gt=0"`
	Progress   *int       `json:"progress" validate:"omitempty,gte=0"`
	Earned     *bool      `json:"earned"`
	EarnedDate *time.Time `json:"earnedDate"`
}

type badgeProgressRequest struct {
	UserID  string `json:"userId" validate:"required"`
	BadgeID int    `json:"badgeId" validate:"required,gt=0"`
	Delta   int    `json:"delta" validate:"required"`
}

type createProfileRequest struct {
	UserID       string `json:"userId" validate:"required"`
	Name         string `json:"name" validate:"required,max=100"`
	ProfileImage string `json:"profileImage" validate:"required,url"`
}

type updateProfileRequest struct {
	UserID       string  `json:"userId" validate:"required"`
	Name         *string `json:"name" validate:"omitempty,max=100"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
	Coins        *int64  `json:"coins" validate:"omitempty,gte=0"`
}

type awardCoinsRequest struct {
	UserID string `json:"userId" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0,lte=1000"`
}

type createPostRequest struct {
	UserID     string `json:"userId" validate:"required"`
	UserName   string `json:"userName" validate:"required,max=100"`
	UserImage  string `json:"userImage"`
	BadgeImage string `json:"badgeImage"`
	Content    string `json:"content" validate:"required"`
}

type deletePostRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type toggleLikeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type addCommentRequest struct {
	UserID    string `json:"userId" validate:"required"`
	UserName  string `json:"userName" validate:"required,max=100"`
	UserImage string `json:"userImage"`
	Content   string `json:"content" validate:"required"`
}

type logStudyTimeRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Minutes int    `json:"minutes" validate:"required,gt=0,lte=1440"`
}

type leaderboardEntryDTO struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Coins        int64  `json:"coins"`
	Points       int64  `json:"points"`
	PreviousRank *int   `json:"previousRank"`
	CurrentRank  *int   `json:"currentRank"`
	RankChange   string `json:"rankChange,omitempty"`
	LastUpdated  string `json:"lastUpdated"`
}

type badgeDTO struct {
	UserID      string  `json:"userId"`
	BadgeID     int     `json:"badgeId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	IconType    string  `json:"iconType"`
	Earned      bool    `json:"earned"`
	EarnedDate  *string `json:"earnedDate"`
	Progress    int     `json:"progress"`
	Total       int     `json:"total"`
}

type profileDTO struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
	Coins        int64  `json:"coins"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type commentDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserImage string `json:"userImage"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type postDTO struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	UserName   string       `json:"userName"`
	UserImage  string       `json:"userImage"`
	BadgeImage string       `json:"badgeImage"`
	Content    string       `json:"content"`
	Likes      []string     `json:"likes"`
	Comments   []commentDTO `json:"comments"`
	CreatedAt  string       `json:"createdAt"`
	UpdatedAt  string       `json:"updatedAt"`
}

type postPageDTO struct {
	Posts []postDTO `json:"posts"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Pages int       `json:"pages"`
}

type likeDTO struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type commentResultDTO struct {
	Comment      commentDTO `json:"comment"`
	CommentCount int        `json:"commentCount"`
}

type studyDayDTO struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

func leaderboardEntryToDTO(ctx context.Context, v leaderboard.Entry) leaderboardEntryDTO {
	_, span := startSpan(ctx, "httpapi.leaderboardEntryToDTO")
	defer span.End()

	return leaderboardEntryDTO{
		ID:           v.ID,
		UserID:       v.UserID,
		Name:         v.Name,
		Coins:        v.Coins,
		Points:       v.Points,
		PreviousRank: v.PreviousRank,
		CurrentRank:  v.CurrentRank,
		RankChange:   string(v.RankChange),
		LastUpdated:  formatTime(v.LastUpdated),
	}
}

func badgeToDTO(ctx context.Context, v badge.Badge) badgeDTO {
	_, span := startSpan(ctx, "httpapi.badgeToDTO")
	defer span.End()

	var earnedDate *string
	if v.EarnedDate != nil {
		formatted := formatTime(*v.EarnedDate)
		earnedDate = &formatted
	}

	return badgeDTO{
		UserID:      v.UserID,
		BadgeID:     v.BadgeID,
		Name:        v.Name,
		Description: v.Description,
		IconType:    v.IconType,
		Earned:      v.Earned,
		EarnedDate:  earnedDate,
		Progress:    v.Progress,
		Total:       v.Total,
	}
}

func profileToDTO(ctx context.Context, v profile.Profile) profileDTO {
	_, span := startSpan(ctx, "httpapi.profileToDTO")
	defer span.End()

	return profileDTO{
		UserID:       v.UserID,
		Name:         v.Name,
		ProfileImage: v.ProfileImage,
		Coins:        v.Coins,
		CreatedAt:    formatTime(v.CreatedAt),
		UpdatedAt:    formatTime(v.UpdatedAt),
	}
}

func commentToDTO(v peerpod.Comment) commentDTO {
	return commentDTO{
		ID:        v.ID,
		UserID:    v.UserID,
		UserName:  v.UserName,
		UserImage: v.UserImage,
		Content:   v.Content,
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func postToDTO(ctx context.Context, v peerpod.Post) postDTO {
	_, span := startSpan(ctx, "httpapi.postToDTO")
	defer span.End()

	comments := make([]commentDTO, 0, len(v.Comments))
	for _, c := range v.Comments {
		comments = append(comments, commentToDTO(c))
	}

	return postDTO{
		ID:         v.ID,
		UserID:     v.UserID,
		UserName:   v.UserName,
		UserImage:  v.UserImage,
		BadgeImage: v.BadgeImage,
		Content:    v.Content,
		Likes:      append([]string{}, v.Likes...),
		Comments:   comments,
		CreatedAt:  formatTime(v.CreatedAt),
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
}

func studyDayToDTO(v activity.Day) studyDayDTO {
	return studyDayDTO{Date: v.Date, Minutes: v.Minutes}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
