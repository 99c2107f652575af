package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"cardwise/internal/config"
	"cardwise/internal/domain/service/recommend"
	"cardwise/internal/infrastructure/bizcache"
	"cardwise/internal/infrastructure/catalog"
	"cardwise/internal/infrastructure/persistence"
	"cardwise/internal/infrastructure/places"
	"cardwise/internal/metrics"
	"cardwise/internal/server"
	"cardwise/internal/worker"
	"cardwise/pkg/application/connectors"
	"cardwise/pkg/application/modules"
	"cardwise/pkg/contextx"
	"cardwise/pkg/logx"
	"cardwise/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

func Run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	log.Info("database connection OK")

	// 3. Redis
	rd := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rd.Client(ctx)
	defer rd.Close(ctx)

	// 4. Catalog snapshot (fatal on a malformed catalog)
	catalogStore := catalog.NewStore(cfg.Catalog.Path)
	if err := catalogStore.Load(ctx); err != nil {
		return fmt.Errorf("catalog load: %w", err)
	}

	// 5. Metrics
	recorder := metrics.NewRecorder()
	recorder.Register(prometheus.DefaultRegisterer)

	// 6. Infrastructure
	businessRepo := persistence.NewBusinessRepository(db)
	businessCache := bizcache.New(redisClient, cfg.Redis.BusinessTTL)
	placesClient := places.NewClient(cfg.Places)

	// 7. Services
	recommendService := recommend.NewService(businessRepo, businessCache, catalogStore, recorder)

	srv := server.NewServer(
		server.NewRecommendServer(recommendService),
		server.NewCardServer(catalogStore),
		server.NewBusinessServer(businessRepo, placesClient),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.UserID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.Recovery,
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsListenAddress}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	// 8. Catalog reload worker
	reloader := worker.NewCatalogReloader(catalogStore, recorder, cfg.Catalog.ReloadInterval)
	if err := reloader.Start(ctx); err != nil {
		return fmt.Errorf("reloader start: %w", err)
	}
	defer reloader.Stop()

	return g.Wait() //nolint:wrapcheck
}
