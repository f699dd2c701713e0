package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/gpbuil/fifa2026-new/external/accounts"
	"github.com/gpbuil/fifa2026-new/external/supabase"
	"github.com/gpbuil/fifa2026-new/internal/config"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/domain/user"
	"github.com/gpbuil/fifa2026-new/internal/infrastructure/repository/memory"
	"github.com/gpbuil/fifa2026-new/internal/infrastructure/repository/postgres"
	"github.com/gpbuil/fifa2026-new/internal/interfaces/httpapi"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
	idgen "github.com/gpbuil/fifa2026-new/internal/platform/id"
	"github.com/gpbuil/fifa2026-new/internal/platform/logging"
	"github.com/gpbuil/fifa2026-new/internal/platform/resilience"
	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

type stores struct {
	teams       team.Repository
	predictions prediction.Repository
	directory   user.Directory
	close       func() error
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	backing, err := buildStores(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cacheTTL := cfg.CacheTTL
	if !cfg.CacheEnabled {
		// Entries written with a nanosecond TTL are expired by the next
		// read, so every lookup goes to the store.
		cacheTTL = time.Nanosecond
	}
	store := cache.NewStore(cacheTTL)
	idGenerator := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(backing.teams, backing.predictions, store)
	standingsSvc := usecase.NewStandingsService(backing.teams, backing.predictions, store)
	bracketSvc := usecase.NewBracketService(backing.teams, backing.predictions, store)
	scoringSvc := usecase.NewScoringService(backing.teams, backing.predictions, backing.directory, store)
	rankingSvc := usecase.NewRankingService(scoringSvc, backing.predictions, store, cfg.RecomputeWorkers)
	predictionSvc := usecase.NewPredictionService(backing.teams, backing.predictions, store, idGenerator)
	resultsSvc := usecase.NewResultsService(backing.teams, backing.predictions, store, idGenerator)

	verifier := accounts.NewClient(accounts.ClientConfig{
		BaseURL:        cfg.AccountsBaseURL,
		IntrospectPath: cfg.AccountsIntrospectPath,
		Timeout:        cfg.AccountsTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AccountsCircuitEnabled,
			FailureThreshold: cfg.AccountsCircuitFailureCount,
			OpenTimeout:      cfg.AccountsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AccountsCircuitHalfOpenMaxReq,
		},
		CacheTTL:     cfg.AccountsCacheTTL,
		CacheMaxSize: cfg.AccountsCacheMaxSize,
		AdminUserIDs: cfg.AdminUserIDs,
	})

	handler := httpapi.NewHandler(
		teamSvc,
		standingsSvc,
		bracketSvc,
		scoringSvc,
		rankingSvc,
		predictionSvc,
		resultsSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = backing.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, backing.close, nil
}

func buildStores(cfg config.Config, logger *logging.Logger) (stores, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return stores{}, fmt.Errorf("open database: %w", err)
		}
		return stores{
			teams:       postgres.NewTeamRepository(db),
			predictions: postgres.NewPredictionRepository(db),
			directory:   postgres.NewUserDirectory(db),
			close:       db.Close,
		}, nil

	case config.StoreSupabase:
		client, err := supabase.NewClient(supabase.ClientConfig{
			BaseURL:    cfg.SupabaseURL,
			APIKey:     cfg.SupabaseAPIKey,
			Timeout:    cfg.SupabaseTimeout,
			MaxRetries: cfg.SupabaseMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SupabaseCircuitEnabled,
				FailureThreshold: cfg.SupabaseCircuitFailureCount,
				OpenTimeout:      cfg.SupabaseCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SupabaseCircuitHalfOpenMaxReq,
			},
		})
		if err != nil {
			return stores{}, fmt.Errorf("build supabase client: %w", err)
		}
		// The 48-team seed is static for the tournament, so team lookups
		// stay local even when prediction rows live in Supabase.
		return stores{
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			predictions: client,
			directory:   client,
			close:       func() error { return nil },
		}, nil

	default:
		return stores{
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			predictions: memory.NewPredictionRepository(),
			directory:   memory.NewUserDirectory(nil),
			close:       func() error { return nil },
		}, nil
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
