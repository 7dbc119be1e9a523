package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/learnquest/internal/config"
	"github.com/riskibarqy/learnquest/internal/domain/activity"
	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"github.com/riskibarqy/learnquest/internal/domain/leaderboard"
	"github.com/riskibarqy/learnquest/internal/domain/peerpod"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/breaker"
	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/mongostore"
	"github.com/riskibarqy/learnquest/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
	"github.com/riskibarqy/learnquest/internal/platform/resilience"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Stores groups the repositories of every aggregate behind one driver.
type Stores struct {
	Leaderboard leaderboard.Repository
	Badges      badge.Repository
	Profiles    profile.Repository
	PeerPod     peerpod.Repository
	Activity    activity.Repository

	close func(context.Context) error
}

func (s Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStores connects the configured store driver. Networked stores get a
// circuit breaker on the gamification repositories and profiles get the read
// cache when enabled.
func OpenStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (Stores, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		stores Stores
		err    error
	)
	switch cfg.StoreDriver {
	case config.StoreMongo:
		stores, err = openMongoStores(ctx, cfg)
	case config.StorePostgres:
		stores, err = openPostgresStores(ctx, cfg)
	case config.StoreMemory, "":
		stores, err = openMemoryStores(ctx, cfg)
	default:
		err = fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return Stores{}, err
	}

	guarded := false
	if cfg.StoreDriver == config.StoreMongo || cfg.StoreDriver == config.StorePostgres {
		if b := resilience.NewCircuitBreakerFromConfig(cfg.StoreBreaker); b != nil {
			stores.Leaderboard = breaker.NewLeaderboardRepository(stores.Leaderboard, b)
			stores.Badges = breaker.NewBadgeRepository(stores.Badges, b)
			guarded = true
		}
	}
	if cfg.CacheEnabled {
		stores.Profiles = cache.NewProfileRepository(stores.Profiles, cfg.CacheTTL)
	}

	logger.Info("stores ready",
		"driver", cfg.StoreDriver,
		"store_breaker", guarded,
		"profile_cache", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
	)
	return stores, nil
}

func openMemoryStores(ctx context.Context, cfg config.Config) (Stores, error) {
	now := time.Now().UTC()
	var seed []leaderboard.Entry
	if cfg.AppEnv == config.EnvDev {
		seed = memory.SeedLeaderboard(now)
	}

	profiles := memory.NewProfileRepository()
	if cfg.AppEnv == config.EnvDev {
		for _, p := range memory.SeedProfiles(now) {
			if _, _, err := profiles.Create(ctx, p); err != nil {
				return Stores{}, fmt.Errorf("seed profile user=%s: %w", p.UserID, err)
			}
		}
	}

	return Stores{
		Leaderboard: memory.NewLeaderboardRepository(seed),
		Badges:      memory.NewBadgeRepository(),
		Profiles:    profiles,
		PeerPod:     memory.NewPeerPodRepository(),
		Activity:    memory.NewActivityRepository(),
	}, nil
}

func openMongoStores(ctx context.Context, cfg config.Config) (Stores, error) {
	store, err := mongostore.Open(ctx, mongostore.Config{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDatabase,
		ConnectTimeout: cfg.MongoConnectTimeout,
	})
	if err != nil {
		return Stores{}, fmt.Errorf("open mongo store: %w", err)
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = store.Close(context.Background())
		return Stores{}, fmt.Errorf("ensure mongo indexes: %w", err)
	}

	return Stores{
		Leaderboard: store.Leaderboard(),
		Badges:      store.Badges(),
		Profiles:    store.Profiles(),
		PeerPod:     store.PeerPod(),
		Activity:    store.Activity(),
		close:       store.Close,
	}, nil
}

func openPostgresStores(ctx context.Context, cfg config.Config) (Stores, error) {
	db, err := openPostgres(ctx, cfg)
	if err != nil {
		return Stores{}, err
	}

	return Stores{
		Leaderboard: postgres.NewLeaderboardRepository(db, cfg.RankWriteChunkSize, cfg.RankWriteWorkers),
		Badges:      postgres.NewBadgeRepository(db),
		Profiles:    postgres.NewProfileRepository(db),
		PeerPod:     postgres.NewPeerPodRepository(db),
		Activity:    postgres.NewActivityRepository(db),
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := PostgresDSN(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.RankWriteWorkers * 4)
	db.SetMaxIdleConns(cfg.RankWriteWorkers)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
