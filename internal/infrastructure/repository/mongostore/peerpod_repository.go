package mongostore

import (
	"context"
	"slices"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/learnquest/internal/domain/peerpod"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PeerPodRepository struct {
	coll *mongo.Collection
}

func (r *PeerPodRepository) List(ctx context.Context, page peerpod.PageRequest) ([]peerpod.Post, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, crerr.Wrap(err, "count posts")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, 0, crerr.Wrap(err, "find posts")
	}

	var docs []postDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, crerr.Wrap(err, "decode posts")
	}

	out := make([]peerpod.Post, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, total, nil
}

func (r *PeerPodRepository) Create(ctx context.Context, post peerpod.Post) error {
	if _, err := r.coll.InsertOne(ctx, newPostDoc(post)); err != nil {
		return crerr.Wrapf(err, "insert post=%s", post.ID)
	}
	return nil
}

func (r *PeerPodRepository) GetByID(ctx context.Context, postID string) (peerpod.Post, bool, error) {
	var doc postDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: postID}}).Decode(&doc)
	if isNoDocuments(err) {
		return peerpod.Post{}, false, nil
	}
	if err != nil {
		return peerpod.Post{}, false, crerr.Wrapf(err, "find post=%s", postID)
	}
	return doc.toDomain(), true, nil
}

func (r *PeerPodRepository) Delete(ctx context.Context, postID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: postID}}); err != nil {
		return crerr.Wrapf(err, "delete post=%s", postID)
	}
	return nil
}

// ToggleLike adds or removes userID from the likes array in a single
// pipeline update, so concurrent toggles never lose a like.
func (r *PeerPodRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, int, bool, error) {
	user := bson.D{{Key: "$literal", Value: userID}}
	likes := bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$in", Value: bson.A{user, bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}}}},
		bson.D{{Key: "$filter", Value: bson.D{
			{Key: "input", Value: "$likes"},
			{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", user}}}},
		}}},
		bson.D{{Key: "$concatArrays", Value: bson.A{
			bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}},
			bson.A{user},
		}}},
	}}}
	pipeline := mongo.Pipeline{{{Key: "$set", Value: bson.D{{Key: "likes", Value: likes}}}}}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{{Key: "likes", Value: 1}})

	var doc struct {
		Likes []string `bson:"likes"`
	}
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: postID}}, pipeline, opts).Decode(&doc)
	if isNoDocuments(err) {
		return false, 0, false, nil
	}
	if err != nil {
		return false, 0, false, crerr.Wrapf(err, "toggle like post=%s", postID)
	}
	return slices.Contains(doc.Likes, userID), len(doc.Likes), true, nil
}

func (r *PeerPodRepository) AddComment(ctx context.Context, postID string, comment peerpod.Comment) (int, bool, error) {
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "comments", Value: newCommentDoc(comment)}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: comment.CreatedAt}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{{Key: "comments.id", Value: 1}})

	var doc struct {
		Comments []bson.Raw `bson:"comments"`
	}
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: postID}}, update, opts).Decode(&doc)
	if isNoDocuments(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, crerr.Wrapf(err, "add comment post=%s", postID)
	}
	return len(doc.Comments), true, nil
}
