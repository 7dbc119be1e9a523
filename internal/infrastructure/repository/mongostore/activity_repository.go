package mongostore

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/learnquest/internal/domain/activity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository struct {
	coll *mongo.Collection
}

func (r *ActivityRepository) AddMinutes(ctx context.Context, userID, date string, minutes int) (activity.Day, error) {
	filter := bson.D{{Key: "userId", Value: userID}, {Key: "date", Value: date}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "minutes", Value: minutes}}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc studyDayDoc
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return activity.Day{}, crerr.Wrapf(err, "increment study minutes user=%s date=%s", userID, date)
	}
	return doc.toDomain(), nil
}

func (r *ActivityRepository) ListRange(ctx context.Context, userID, fromDate, toDate string) ([]activity.Day, error) {
	filter := bson.D{
		{Key: "userId", Value: userID},
		{Key: "date", Value: bson.D{{Key: "$gte", Value: fromDate}, {Key: "$lte", Value: toDate}}},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, crerr.Wrapf(err, "find study days user=%s", userID)
	}

	var docs []studyDayDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, crerr.Wrapf(err, "decode study days user=%s", userID)
	}

	out := make([]activity.Day, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}
