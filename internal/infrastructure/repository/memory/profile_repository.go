package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/profile"
)

type ProfileRepository struct {
	mu    sync.RWMutex
	items map[string]profile.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{items: make(map[string]profile.Profile)}
}

func (r *ProfileRepository) GetByUserID(_ context.Context, userID string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	return item, ok, nil
}

func (r *ProfileRepository) Create(_ context.Context, p profile.Profile) (profile.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[p.UserID]; ok {
		return existing, false, nil
	}
	r.items[p.UserID] = p
	return p, true, nil
}

func (r *ProfileRepository) Upsert(_ context.Context, userID string, changes profile.Changes, now time.Time) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[userID]
	if !ok {
		item = profile.Profile{UserID: userID, CreatedAt: now}
	}
	if changes.Name != nil {
		item.Name = *changes.Name
	}
	if changes.ProfileImage != nil {
		item.ProfileImage = *changes.ProfileImage
	}
	if changes.Coins != nil {
		item.Coins = *changes.Coins
	}
	item.UpdatedAt = now
	r.items[userID] = item
	return item, nil
}

func (r *ProfileRepository) AddCoins(_ context.Context, userID string, amount int64, now time.Time) (profile.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[userID]
	if !ok {
		return profile.Profile{}, false, nil
	}
	item.Coins += amount
	item.UpdatedAt = now
	r.items[userID] = item
	return item, true, nil
}
