package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/volleyverse/fantasy-volley/internal/config"
	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	"github.com/volleyverse/fantasy-volley/internal/domain/user"
	"github.com/volleyverse/fantasy-volley/internal/infrastructure/images"
	cacherepo "github.com/volleyverse/fantasy-volley/internal/infrastructure/repository/cache"
	"github.com/volleyverse/fantasy-volley/internal/infrastructure/repository/memory"
	"github.com/volleyverse/fantasy-volley/internal/infrastructure/repository/postgres"
	"github.com/volleyverse/fantasy-volley/internal/infrastructure/token"
	"github.com/volleyverse/fantasy-volley/internal/interfaces/httpapi"
	basecache "github.com/volleyverse/fantasy-volley/internal/platform/cache"
	idgen "github.com/volleyverse/fantasy-volley/internal/platform/id"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
	"github.com/volleyverse/fantasy-volley/internal/platform/resilience"
	"github.com/volleyverse/fantasy-volley/internal/usecase"
)

type repositories struct {
	users   user.Repository
	players player.Repository
	lineups lineup.Repository
	close   func() error
}

// NewHTTPServer wires the full service: storage per STORAGE_DRIVER,
// use cases, and the HTTP router.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := token.NewJWTManager(token.JWTConfig{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL})
	if err != nil {
		repos.closeQuiet(logger)
		return nil, nil, fmt.Errorf("init token manager: %w", err)
	}

	idGenerator := idgen.NewUUIDGenerator()

	var imageFetcher usecase.ImageFetcher
	if cfg.SeedImagesEnabled {
		imageFetcher = images.NewFetcher(images.FetcherConfig{
			Timeout:    cfg.ImageFetchTimeout,
			MaxRetries: cfg.ImageFetchMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ImageCircuitEnabled,
				FailureThreshold: cfg.ImageCircuitFailureCount,
				OpenTimeout:      cfg.ImageCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ImageCircuitHalfOpenMaxReq,
			},
		})
	}

	authSvc := usecase.NewAuthService(repos.users, tokens, idGenerator, cfg.BcryptCost)
	playerSvc := usecase.NewPlayerService(repos.players)
	lineupSvc := usecase.NewLineupService(repos.lineups, repos.players)
	seedSvc := usecase.NewSeedService(repos.players, imageFetcher, idGenerator, logger, cfg.SeedWorkers)

	if cfg.SeedOnStart {
		inserted, err := seedSvc.Seed(ctx)
		if err != nil {
			repos.closeQuiet(logger)
			return nil, nil, fmt.Errorf("seed roster on start: %w", err)
		}
		logger.Info("roster seed on start", "inserted", inserted)
	}

	handler := httpapi.NewHandler(authSvc, playerSvc, lineupSvc, seedSvc, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		repos.closeQuiet(logger)
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := connectDB(cfg)
		if err != nil {
			return repositories{}, fmt.Errorf("connect postgres: %w", err)
		}

		repos := repositories{
			users:   postgres.NewUserRepository(db),
			players: postgres.NewPlayerRepository(db),
			lineups: postgres.NewLineupRepository(db),
			close:   db.Close,
		}
		if cfg.CacheEnabled {
			repos.players = cacherepo.NewPlayerRepository(repos.players, basecache.NewStore(cfg.CacheTTL))
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "cache_enabled", cfg.CacheEnabled)
		return repos, nil

	case config.StorageMemory:
		logger.Info("storage ready", "driver", cfg.StorageDriver)
		return repositories{
			users:   memory.NewUserRepository(),
			players: memory.NewPlayerRepository(nil),
			lineups: memory.NewLineupRepository(),
			close:   func() error { return nil },
		}, nil

	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func connectDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (r repositories) closeQuiet(logger *logging.Logger) {
	if r.close == nil {
		return
	}
	if err := r.close(); err != nil {
		logger.Warn("close storage", "error", err)
	}
}
