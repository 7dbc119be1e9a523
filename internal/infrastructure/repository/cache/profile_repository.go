package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/profile"
	basecache "github.com/riskibarqy/learnquest/internal/platform/cache"
)

const profileKeyPrefix = "profile:user:"

type cachedProfile struct {
	value  profile.Profile
	exists bool
}

// ProfileRepository serves profile reads from a TTL cache and evicts the
// user's key on every write.
type ProfileRepository struct {
	next  profile.Repository
	cache *basecache.Store[cachedProfile]
}

func NewProfileRepository(next profile.Repository, ttl time.Duration) *ProfileRepository {
	return &ProfileRepository{next: next, cache: basecache.NewStore[cachedProfile](ttl)}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, bool, error) {
	cached, err := r.cache.GetOrLoad(ctx, profileKeyPrefix+userID, func(ctx context.Context) (cachedProfile, error) {
		item, exists, err := r.next.GetByUserID(ctx, userID)
		if err != nil {
			return cachedProfile{}, err
		}
		return cachedProfile{value: item, exists: exists}, nil
	})
	if err != nil {
		return profile.Profile{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, bool, error) {
	defer r.cache.Delete(ctx, profileKeyPrefix+p.UserID)
	return r.next.Create(ctx, p)
}

func (r *ProfileRepository) Upsert(ctx context.Context, userID string, changes profile.Changes, now time.Time) (profile.Profile, error) {
	defer r.cache.Delete(ctx, profileKeyPrefix+userID)
	return r.next.Upsert(ctx, userID, changes, now)
}

func (r *ProfileRepository) AddCoins(ctx context.Context, userID string, amount int64, now time.Time) (profile.Profile, bool, error) {
	defer r.cache.Delete(ctx, profileKeyPrefix+userID)
	return r.next.AddCoins(ctx, userID, amount, now)
}

func (r *ProfileRepository) Stats() basecache.Stats {
	return r.cache.Stats()
}
