package mongostore

import (
	"context"
	"errors"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionLeaderboard = "leaderboard"
	collectionBadges      = "badges"
	collectionProfiles    = "profiles"
	collectionPosts       = "peerpod_posts"
	collectionStudyDays   = "study_days"

	defaultConnectTimeout = 10 * time.Second
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Store owns the client and hands out one repository per collection.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects and pings the server before returning.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, crerr.New("mongo uri is required")
	}
	if cfg.Database == "" {
		return nil, crerr.New("mongo database is required")
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, crerr.Wrap(err, "connect mongo")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, crerr.Wrap(err, "ping mongo")
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// EnsureIndexes creates the unique keys the repositories depend on for
// idempotent inserts and upserts.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		collectionLeaderboard: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: leaderboardListSort},
		},
		collectionBadges: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "badgeId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionPosts: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		},
		collectionStudyDays: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range specs {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return crerr.Wrapf(err, "create indexes on %s", name)
		}
	}
	return nil
}

func (s *Store) Leaderboard() *LeaderboardRepository {
	return &LeaderboardRepository{coll: s.db.Collection(collectionLeaderboard)}
}

func (s *Store) Badges() *BadgeRepository {
	return &BadgeRepository{coll: s.db.Collection(collectionBadges), now: time.Now}
}

func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{coll: s.db.Collection(collectionProfiles)}
}

func (s *Store) PeerPod() *PeerPodRepository {
	return &PeerPodRepository{coll: s.db.Collection(collectionPosts)}
}

func (s *Store) Activity() *ActivityRepository {
	return &ActivityRepository{coll: s.db.Collection(collectionStudyDays)}
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// onlyDuplicateKeys reports whether every write error in err is a unique key
// violation.
func onlyDuplicateKeys(err error) bool {
	var bulkErr mongo.BulkWriteException
	if !errors.As(err, &bulkErr) {
		return mongo.IsDuplicateKeyError(err)
	}
	if bulkErr.WriteConcernError != nil || len(bulkErr.WriteErrors) == 0 {
		return false
	}
	for _, we := range bulkErr.WriteErrors {
		if we.Code != 11000 {
			return false
		}
	}
	return true
}
