package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/gamification"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
)

type LeaderboardService struct {
	repo   leaderboard.Repository
	events gamification.Publisher
	logger *logging.Logger
	now    func() time.Time
}

func NewLeaderboardService(repo leaderboard.Repository, events gamification.Publisher, logger *logging.Logger) *LeaderboardService {
	if events == nil {
		events = gamification.NopPublisher{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &LeaderboardService{
		repo:   repo,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// List recomputes every rank, persists the result and returns the ranked entries.
func (s *LeaderboardService) List(ctx context.Context) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.List")
	defer span.End()

	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard entries: %w", err)
	}

	now := s.now().UTC()
	ranked, updates := leaderboard.Recompute(entries, now)
	if len(updates) == 0 {
		return ranked, nil
	}

	if err := s.repo.BulkWriteRanks(ctx, updates); err != nil {
		return nil, fmt.Errorf("write leaderboard ranks: %w", err)
	}

	moved := 0
	for _, entry := range ranked {
		if entry.RankChange != leaderboard.RankChangeUp && entry.RankChange != leaderboard.RankChangeDown {
			continue
		}
		moved++
		s.events.Publish(ctx, gamification.Event{
			Type:       gamification.EventRankChanged,
			UserID:     entry.UserID,
			Rank:       *entry.CurrentRank,
			RankChange: string(entry.RankChange),
			NewScore:   entry.Coins,
			Timestamp:  now,
		})
	}

	s.logger.DebugContext(ctx, "leaderboard recomputed", "entries", len(ranked), "moved", moved)
	return ranked, nil
}
