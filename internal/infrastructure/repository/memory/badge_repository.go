package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/badge"
)

type BadgeRepository struct {
	mu    sync.Mutex
	items map[string]map[int]badge.Badge
	now   func() time.Time
}

func NewBadgeRepository() *BadgeRepository {
	return &BadgeRepository{
		items: make(map[string]map[int]badge.Badge),
		now:   time.Now,
	}
}

func (r *BadgeRepository) ListByUser(_ context.Context, userID string) ([]badge.Badge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.items[userID]
	out := make([]badge.Badge, 0, len(owned))
	for _, b := range owned {
		out = append(out, cloneBadge(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BadgeID < out[j].BadgeID })
	return out, nil
}

func (r *BadgeRepository) InsertMany(_ context.Context, userID string, badges []badge.Badge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned, ok := r.items[userID]
	if !ok {
		owned = make(map[int]badge.Badge, len(badges))
		r.items[userID] = owned
	}
	for _, b := range badges {
		if _, exists := owned[b.BadgeID]; exists {
			continue
		}
		b.UserID = userID
		owned[b.BadgeID] = cloneBadge(b)
	}
	return nil
}

func (r *BadgeRepository) Get(_ context.Context, userID string, badgeID int) (badge.Badge, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.items[userID][badgeID]
	if !ok {
		return badge.Badge{}, false, nil
	}
	return cloneBadge(b), true, nil
}

func (r *BadgeRepository) ApplyPatch(_ context.Context, userID string, badgeID int, patch badge.Patch, earnedAt time.Time) (badge.Badge, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prior, ok := r.items[userID][badgeID]
	if !ok {
		return badge.Badge{}, false, nil
	}

	updated := badge.Apply(prior, patch, earnedAt)
	updated.UpdatedAt = r.now().UTC()
	r.items[userID][badgeID] = cloneBadge(updated)
	return cloneBadge(prior), true, nil
}

func (r *BadgeRepository) IncrementProgress(_ context.Context, userID string, badgeID int, delta int) (badge.Badge, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prior, ok := r.items[userID][badgeID]
	if !ok {
		return badge.Badge{}, false, nil
	}

	updated := badge.ApplyIncrement(prior, delta)
	updated.UpdatedAt = r.now().UTC()
	r.items[userID][badgeID] = updated
	return cloneBadge(updated), true, nil
}

func cloneBadge(b badge.Badge) badge.Badge {
	out := b
	if b.EarnedDate != nil {
		v := *b.EarnedDate
		out.EarnedDate = &v
	}
	return out
}
