package gamification

import (
	"context"
	"time"
)

type EventType string

const (
	EventBadgeEarned  EventType = "badge_earned"
	EventRankChanged  EventType = "rank_changed"
	EventCoinsAwarded EventType = "coins_awarded"
)

// Event is pushed to connected clients whenever a learner's standing changes.
type Event struct {
	Type       EventType `json:"type"`
	UserID     string    `json:"userId"`
	BadgeID    int       `json:"badgeId,omitempty"`
	BadgeName  string    `json:"badgeName,omitempty"`
	Rank       int       `json:"rank,omitempty"`
	RankChange string    `json:"rankChange,omitempty"`
	Points     int64     `json:"points,omitempty"`
	NewScore   int64     `json:"newScore,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher delivers events without blocking the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
