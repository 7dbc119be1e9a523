package memory

import (
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
)

type seedLearner struct {
	userID string
	name   string
	image  string
	coins  int64
}

var demoLearners = []seedLearner{
	{userID: "demo-ayu", name: "Ayu Lestari", image: "https://api.dicebear.com/7.x/initials/svg?seed=AL", coins: 420},
	{userID: "demo-bima", name: "Bima Saputra", image: "https://api.dicebear.com/7.x/initials/svg?seed=BS", coins: 365},
	{userID: "demo-citra", name: "Citra Dewi", image: "https://api.dicebear.com/7.x/initials/svg?seed=CD", coins: 365},
	{userID: "demo-dimas", name: "Dimas Pratama", image: "https://api.dicebear.com/7.x/initials/svg?seed=DP", coins: 210},
	{userID: "demo-eka", name: "Eka Wulandari", image: "https://api.dicebear.com/7.x/initials/svg?seed=EW", coins: 95},
}

// SeedLeaderboard returns unranked demo entries for local development.
func SeedLeaderboard(now time.Time) []leaderboard.Entry {
	out := make([]leaderboard.Entry, 0, len(demoLearners))
	for _, l := range demoLearners {
		out = append(out, leaderboard.Entry{
			ID:          "lb-" + l.userID,
			UserID:      l.userID,
			Name:        l.name,
			Coins:       l.coins,
			LastUpdated: now.UTC(),
		})
	}
	return out
}

// SeedProfiles returns the profiles matching SeedLeaderboard.
func SeedProfiles(now time.Time) []profile.Profile {
	out := make([]profile.Profile, 0, len(demoLearners))
	for _, l := range demoLearners {
		out = append(out, profile.Profile{
			UserID:       l.userID,
			Name:         l.name,
			ProfileImage: l.image,
			Coins:        l.coins,
			CreatedAt:    now.UTC(),
			UpdatedAt:    now.UTC(),
		})
	}
	return out
}
