package mongostore

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BadgeRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func badgeKey(userID string, badgeID int) bson.D {
	return bson.D{{Key: "userId", Value: userID}, {Key: "badgeId", Value: badgeID}}
}

func (r *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]badge.Badge, error) {
	cursor, err := r.coll.Find(ctx,
		bson.D{{Key: "userId", Value: userID}},
		options.Find().SetSort(bson.D{{Key: "badgeId", Value: 1}}),
	)
	if err != nil {
		return nil, crerr.Wrapf(err, "find badges user=%s", userID)
	}

	var docs []badgeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, crerr.Wrapf(err, "decode badges user=%s", userID)
	}

	out := make([]badge.Badge, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

// InsertMany writes the badges unordered. Rows that already exist for the
// user hit the unique (userId, badgeId) index and are skipped.
func (r *BadgeRepository) InsertMany(ctx context.Context, userID string, badges []badge.Badge) error {
	if len(badges) == 0 {
		return nil
	}

	docs := make([]any, 0, len(badges))
	for _, b := range badges {
		b.UserID = userID
		docs = append(docs, newBadgeDoc(b))
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !onlyDuplicateKeys(err) {
		return crerr.Wrapf(err, "insert badges user=%s", userID)
	}
	return nil
}

func (r *BadgeRepository) Get(ctx context.Context, userID string, badgeID int) (badge.Badge, bool, error) {
	var doc badgeDoc
	err := r.coll.FindOne(ctx, badgeKey(userID, badgeID)).Decode(&doc)
	if isNoDocuments(err) {
		return badge.Badge{}, false, nil
	}
	if err != nil {
		return badge.Badge{}, false, crerr.Wrapf(err, "find badge user=%s badge=%d", userID, badgeID)
	}
	return doc.toDomain(), true, nil
}

// ApplyPatch updates the badge in one server-side pipeline and returns the
// document as it was before the write.
func (r *BadgeRepository) ApplyPatch(ctx context.Context, userID string, badgeID int, patch badge.Patch, earnedAt time.Time) (badge.Badge, bool, error) {
	set := badgePatchSet(patch, earnedAt, r.now().UTC())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	var prior badgeDoc
	err := r.coll.FindOneAndUpdate(ctx, badgeKey(userID, badgeID), mongo.Pipeline{{{Key: "$set", Value: set}}}, opts).Decode(&prior)
	if isNoDocuments(err) {
		return badge.Badge{}, false, nil
	}
	if err != nil {
		return badge.Badge{}, false, crerr.Wrapf(err, "update badge user=%s badge=%d", userID, badgeID)
	}
	return prior.toDomain(), true, nil
}

func (r *BadgeRepository) IncrementProgress(ctx context.Context, userID string, badgeID int, delta int) (badge.Badge, bool, error) {
	pipeline := mongo.Pipeline{{{Key: "$set", Value: bson.D{
		{Key: "progress", Value: clampedProgress(delta)},
		{Key: "updatedAt", Value: r.now().UTC()},
	}}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc badgeDoc
	err := r.coll.FindOneAndUpdate(ctx, badgeKey(userID, badgeID), pipeline, opts).Decode(&doc)
	if isNoDocuments(err) {
		return badge.Badge{}, false, nil
	}
	if err != nil {
		return badge.Badge{}, false, crerr.Wrapf(err, "increment badge progress user=%s badge=%d", userID, badgeID)
	}
	return doc.toDomain(), true, nil
}

// badgePatchSet builds the $set stage for a patch. earnedDate is only written
// when the stored earned flag is false at write time, so a repeated earn keeps
// the first date.
func badgePatchSet(patch badge.Patch, earnedAt, now time.Time) bson.D {
	set := bson.D{{Key: "updatedAt", Value: now}}
	if patch.Progress != nil {
		set = append(set, bson.E{Key: "progress", Value: *patch.Progress})
	}
	if patch.Earned != nil {
		if *patch.Earned {
			set = append(set, bson.E{Key: "earnedDate", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$earned", true}}},
				"$earnedDate",
				earnedAt.UTC(),
			}}}})
		}
		set = append(set, bson.E{Key: "earned", Value: *patch.Earned})
	}
	return set
}

// clampedProgress adds delta to the stored progress, bounded to [0, total].
func clampedProgress(delta int) bson.D {
	return bson.D{{Key: "$min", Value: bson.A{
		bson.D{{Key: "$max", Value: bson.A{
			bson.D{{Key: "$add", Value: bson.A{"$progress", delta}}},
			0,
		}}},
		"$total",
	}}}
}
