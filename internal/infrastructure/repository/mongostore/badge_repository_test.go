package mongostore

import (
	"testing"
	"time"

	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBadgePatchSet(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	earnedAt := time.Date(2025, 3, 1, 19, 0, 0, 0, time.FixedZone("WIB", 7*60*60))
	progress := 4
	earned := true
	unearned := false

	keepFirstDate := bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{"$earned", true}}},
		"$earnedDate",
		earnedAt.UTC(),
	}}}

	tests := []struct {
		name  string
		patch badge.Patch
		want  bson.D
	}{
		{
			name:  "empty patch only touches updatedAt",
			patch: badge.Patch{},
			want:  bson.D{{Key: "updatedAt", Value: now}},
		},
		{
			name:  "progress only",
			patch: badge.Patch{Progress: &progress},
			want: bson.D{
				{Key: "updatedAt", Value: now},
				{Key: "progress", Value: 4},
			},
		},
		{
			name:  "earn keeps the stored date when already earned",
			patch: badge.Patch{Progress: &progress, Earned: &earned},
			want: bson.D{
				{Key: "updatedAt", Value: now},
				{Key: "progress", Value: 4},
				{Key: "earnedDate", Value: keepFirstDate},
				{Key: "earned", Value: true},
			},
		},
		{
			name:  "unearn leaves earnedDate alone",
			patch: badge.Patch{Earned: &unearned},
			want: bson.D{
				{Key: "updatedAt", Value: now},
				{Key: "earned", Value: false},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, badgePatchSet(tc.patch, earnedAt, now))
		})
	}
}

func TestBadgePatchSet_EarnedDateIsUTC(t *testing.T) {
	earned := true
	earnedAt := time.Date(2025, 3, 2, 1, 0, 0, 0, time.FixedZone("WIB", 7*60*60))

	set := badgePatchSet(badge.Patch{Earned: &earned}, earnedAt, time.Now().UTC())
	require.Len(t, set, 3)
	require.Equal(t, "earnedDate", set[1].Key)

	cond := set[1].Value.(bson.D)
	args := cond[0].Value.(bson.A)
	got := args[2].(time.Time)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(earnedAt))
}

func TestClampedProgress(t *testing.T) {
	for _, delta := range []int{-3, 0, 2} {
		want := bson.D{{Key: "$min", Value: bson.A{
			bson.D{{Key: "$max", Value: bson.A{
				bson.D{{Key: "$add", Value: bson.A{"$progress", delta}}},
				0,
			}}},
			"$total",
		}}}
		assert.Equal(t, want, clampedProgress(delta), "delta=%d", delta)
	}
}
