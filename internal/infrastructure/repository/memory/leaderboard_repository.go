package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
)

type LeaderboardRepository struct {
	mu       sync.RWMutex
	order    []string
	byID     map[string]leaderboard.Entry
	idByUser map[string]string
}

func NewLeaderboardRepository(seed []leaderboard.Entry) *LeaderboardRepository {
	r := &LeaderboardRepository{
		byID:     make(map[string]leaderboard.Entry, len(seed)),
		idByUser: make(map[string]string, len(seed)),
	}
	for _, entry := range seed {
		r.order = append(r.order, entry.ID)
		r.byID[entry.ID] = cloneEntry(entry)
		r.idByUser[entry.UserID] = entry.ID
	}
	return r
}

// ListAll returns entries in insertion order.
func (r *LeaderboardRepository) ListAll(_ context.Context) ([]leaderboard.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaderboard.Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneEntry(r.byID[id]))
	}
	return out, nil
}

func (r *LeaderboardRepository) BulkWriteRanks(_ context.Context, updates []leaderboard.RankUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range updates {
		entry, ok := r.byID[u.ID]
		if !ok {
			return fmt.Errorf("leaderboard entry %s not found", u.ID)
		}
		current := u.CurrentRank
		previous := u.PreviousRank
		entry.CurrentRank = &current
		entry.PreviousRank = &previous
		entry.RankChange = u.RankChange
		r.byID[u.ID] = entry
	}
	return nil
}

func (r *LeaderboardRepository) GetByUserID(_ context.Context, userID string) (leaderboard.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByUser[userID]
	if !ok {
		return leaderboard.Entry{}, false, nil
	}
	return cloneEntry(r.byID[id]), true, nil
}

func (r *LeaderboardRepository) UpsertCoins(_ context.Context, entry leaderboard.Entry) (leaderboard.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.idByUser[entry.UserID]; ok {
		stored := r.byID[id]
		stored.Coins = entry.Coins
		if entry.Name != "" {
			stored.Name = entry.Name
		}
		stored.LastUpdated = entry.LastUpdated
		r.byID[id] = stored
		return cloneEntry(stored), nil
	}

	created := leaderboard.Entry{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Name:        entry.Name,
		Coins:       entry.Coins,
		LastUpdated: entry.LastUpdated,
	}
	r.order = append(r.order, created.ID)
	r.byID[created.ID] = created
	r.idByUser[created.UserID] = created.ID
	return cloneEntry(created), nil
}

func (r *LeaderboardRepository) IncrementCoins(_ context.Context, entry leaderboard.Entry, delta int64) (leaderboard.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.idByUser[entry.UserID]; ok {
		stored := r.byID[id]
		stored.Coins += delta
		if entry.Name != "" {
			stored.Name = entry.Name
		}
		stored.LastUpdated = entry.LastUpdated
		r.byID[id] = stored
		return cloneEntry(stored), nil
	}

	created := leaderboard.Entry{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Name:        entry.Name,
		Coins:       delta,
		LastUpdated: entry.LastUpdated,
	}
	r.order = append(r.order, created.ID)
	r.byID[created.ID] = created
	r.idByUser[created.UserID] = created.ID
	return cloneEntry(created), nil
}

func cloneEntry(e leaderboard.Entry) leaderboard.Entry {
	out := e
	if e.PreviousRank != nil {
		v := *e.PreviousRank
		out.PreviousRank = &v
	}
	if e.CurrentRank != nil {
		v := *e.CurrentRank
		out.CurrentRank = &v
	}
	return out
}
