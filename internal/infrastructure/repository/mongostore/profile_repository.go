package mongostore

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	coll *mongo.Collection
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, bool, error) {
	var doc profileDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}).Decode(&doc)
	if isNoDocuments(err) {
		return profile.Profile{}, false, nil
	}
	if err != nil {
		return profile.Profile{}, false, crerr.Wrapf(err, "find profile user=%s", userID)
	}
	return doc.toDomain(), true, nil
}

// Create inserts p unless a profile already exists, in which case the stored
// profile is returned with created=false.
func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, bool, error) {
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "name", Value: p.Name},
		{Key: "profileImage", Value: p.ProfileImage},
		{Key: "coins", Value: p.Coins},
		{Key: "createdAt", Value: p.CreatedAt},
		{Key: "updatedAt", Value: p.UpdatedAt},
	}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var existing profileDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: p.UserID}}, update, opts).Decode(&existing)
	if isNoDocuments(err) {
		return p, true, nil
	}
	if err != nil {
		return profile.Profile{}, false, crerr.Wrapf(err, "create profile user=%s", p.UserID)
	}
	return existing.toDomain(), false, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, userID string, changes profile.Changes, now time.Time) (profile.Profile, error) {
	set := bson.D{{Key: "updatedAt", Value: now}}
	onInsert := bson.D{{Key: "createdAt", Value: now}}

	if changes.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *changes.Name})
	} else {
		onInsert = append(onInsert, bson.E{Key: "name", Value: ""})
	}
	if changes.ProfileImage != nil {
		set = append(set, bson.E{Key: "profileImage", Value: *changes.ProfileImage})
	} else {
		onInsert = append(onInsert, bson.E{Key: "profileImage", Value: ""})
	}
	if changes.Coins != nil {
		set = append(set, bson.E{Key: "coins", Value: *changes.Coins})
	} else {
		onInsert = append(onInsert, bson.E{Key: "coins", Value: int64(0)})
	}

	update := bson.D{{Key: "$set", Value: set}, {Key: "$setOnInsert", Value: onInsert}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc profileDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: userID}}, update, opts).Decode(&doc); err != nil {
		return profile.Profile{}, crerr.Wrapf(err, "upsert profile user=%s", userID)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) AddCoins(ctx context.Context, userID string, amount int64, now time.Time) (profile.Profile, bool, error) {
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "coins", Value: amount}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc profileDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: userID}}, update, opts).Decode(&doc)
	if isNoDocuments(err) {
		return profile.Profile{}, false, nil
	}
	if err != nil {
		return profile.Profile{}, false, crerr.Wrapf(err, "add coins user=%s", userID)
	}
	return doc.toDomain(), true, nil
}
