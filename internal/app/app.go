package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/learnquest/internal/config"
	"github.com/riskibarqy/learnquest/internal/domain/badge"
	"github.com/riskibarqy/learnquest/internal/domain/gamification"
	"github.com/riskibarqy/learnquest/internal/interfaces/httpapi"
	"github.com/riskibarqy/learnquest/internal/interfaces/realtime"
	idgen "github.com/riskibarqy/learnquest/internal/platform/id"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
	"github.com/riskibarqy/learnquest/internal/usecase"
)

// Runtime is the assembled API process: HTTP server, event hub and stores.
type Runtime struct {
	Server *http.Server
	Hub    *realtime.Hub
	Stores Stores
}

// LoadCatalog returns the configured badge catalog, or the default one when no
// file is configured.
func LoadCatalog(cfg config.Config) (badge.Catalog, error) {
	if cfg.BadgeCatalogPath == "" {
		return badge.DefaultCatalog(), nil
	}
	catalog, err := badge.LoadCatalog(cfg.BadgeCatalogPath)
	if err != nil {
		return badge.Catalog{}, fmt.Errorf("load badge catalog %s: %w", cfg.BadgeCatalogPath, err)
	}
	return catalog, nil
}

// NewServices builds the use case layer over the given stores.
func NewServices(stores Stores, catalog badge.Catalog, events gamification.Publisher, logger *logging.Logger) httpapi.Services {
	ids := idgen.NewRandomGenerator()

	return httpapi.Services{
		Leaderboard: usecase.NewLeaderboardService(stores.Leaderboard, events, logger),
		Badges:      usecase.NewBadgeService(stores.Badges, catalog, events, logger),
		Profiles:    usecase.NewProfileService(stores.Profiles, stores.Leaderboard, ids, events, logger),
		PeerPod:     usecase.NewPeerPodService(stores.PeerPod, ids),
		Activity:    usecase.NewActivityService(stores.Activity),
	}
}

func NewRuntime(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	stores, err := OpenStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	hub := realtime.NewHub(realtime.Config{
		AllowedOrigins:   cfg.WSAllowedOrigins,
		BroadcastWorkers: cfg.WSBroadcastWorkers,
		QueueSize:        cfg.WSQueueSize,
	}, logger.With("component", "realtime"))

	handler := httpapi.NewHandler(NewServices(stores, catalog, hub, logger), hub, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &Runtime{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Hub:    hub,
		Stores: stores,
	}, nil
}

// Close stops the hub and releases store connections.
func (r *Runtime) Close(ctx context.Context) error {
	r.Hub.Close()
	return r.Stores.Close(ctx)
}
