package mongostore

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LeaderboardRepository struct {
	coll *mongo.Collection
}

// leaderboardListSort orders entries by creation so equal-coin ties keep
// their arrival order. Ids are random and only break exact timestamp ties.
var leaderboardListSort = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

func (r *LeaderboardRepository) ListAll(ctx context.Context) ([]leaderboard.Entry, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(leaderboardListSort))
	if err != nil {
		return nil, crerr.Wrap(err, "find leaderboard entries")
	}

	var docs []leaderboardDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, crerr.Wrap(err, "decode leaderboard entries")
	}

	out := make([]leaderboard.Entry, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *LeaderboardRepository) BulkWriteRanks(ctx context.Context, updates []leaderboard.RankUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(updates))
	for _, u := range updates {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: u.ID}}).
			SetUpdate(bson.D{{Key: "$set", Value: bson.D{
				{Key: "currentRank", Value: u.CurrentRank},
				{Key: "previousRank", Value: u.PreviousRank},
				{Key: "rankChange", Value: string(u.RankChange)},
			}}}))
	}

	if _, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return crerr.Wrapf(err, "bulk write %d leaderboard ranks", len(updates))
	}
	return nil
}

func (r *LeaderboardRepository) GetByUserID(ctx context.Context, userID string) (leaderboard.Entry, bool, error) {
	var doc leaderboardDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&doc)
	if isNoDocuments(err) {
		return leaderboard.Entry{}, false, nil
	}
	if err != nil {
		return leaderboard.Entry{}, false, crerr.Wrapf(err, "find leaderboard entry user=%s", userID)
	}
	return doc.toDomain(), true, nil
}

func (r *LeaderboardRepository) UpsertCoins(ctx context.Context, entry leaderboard.Entry) (leaderboard.Entry, error) {
	return r.writeCoins(ctx, entry, coinsUpdate(entry, entry.Coins, false))
}

func (r *LeaderboardRepository) IncrementCoins(ctx context.Context, entry leaderboard.Entry, delta int64) (leaderboard.Entry, error) {
	return r.writeCoins(ctx, entry, coinsUpdate(entry, delta, true))
}

func (r *LeaderboardRepository) writeCoins(ctx context.Context, entry leaderboard.Entry, update bson.D) (leaderboard.Entry, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc leaderboardDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "userId", Value: entry.UserID}}, update, opts).Decode(&doc); err != nil {
		return leaderboard.Entry{}, crerr.Wrapf(err, "upsert leaderboard coins user=%s", entry.UserID)
	}
	return doc.toDomain(), nil
}

// coinsUpdate replaces the coin total, or adds to it with $inc when increment
// is set. Identity fields are written only when the upsert inserts.
func coinsUpdate(entry leaderboard.Entry, coins int64, increment bool) bson.D {
	set := bson.D{{Key: "lastUpdated", Value: entry.LastUpdated}}
	if entry.Name != "" {
		set = append(set, bson.E{Key: "name", Value: entry.Name})
	}

	update := bson.D{}
	if increment {
		update = append(update, bson.E{Key: "$inc", Value: bson.D{{Key: "coins", Value: coins}}})
	} else {
		set = append(set, bson.E{Key: "coins", Value: coins})
	}
	return append(update,
		bson.E{Key: "$set", Value: set},
		bson.E{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: entry.ID},
			{Key: "points", Value: int64(0)},
			{Key: "createdAt", Value: entry.LastUpdated},
		}},
	)
}
