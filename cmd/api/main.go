package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/royalstarlog/freightdesk-backend/api/routes"
	"github.com/royalstarlog/freightdesk-backend/internal/agents"
	authsvc "github.com/royalstarlog/freightdesk-backend/internal/auth"
	"github.com/royalstarlog/freightdesk-backend/internal/carriers"
	"github.com/royalstarlog/freightdesk-backend/internal/documents"
	"github.com/royalstarlog/freightdesk-backend/internal/files"
	"github.com/royalstarlog/freightdesk-backend/internal/loads"
	"github.com/royalstarlog/freightdesk-backend/internal/rateconfirmations"
	"github.com/royalstarlog/freightdesk-backend/internal/shippers"
	"github.com/royalstarlog/freightdesk-backend/pkg/auth/session"
	"github.com/royalstarlog/freightdesk-backend/pkg/config"
	"github.com/royalstarlog/freightdesk-backend/pkg/db"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
	"github.com/royalstarlog/freightdesk-backend/pkg/migrate"
	"github.com/royalstarlog/freightdesk-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(cfg.Auth, cfg.JWT, sessionManager)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	fileManager, err := files.NewManager(cfg.Storage.UploadDir)
	if err != nil {
		logg.Error(context.Background(), "failed to create upload manager", err)
		os.Exit(1)
	}

	docStore, err := documents.NewStore(cfg.Storage.RateConDir)
	if err != nil {
		logg.Error(context.Background(), "failed to create document store", err)
		os.Exit(1)
	}

	agentService, err := agents.NewService(agents.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create agent service", err)
		os.Exit(1)
	}

	loadService, err := loads.NewService(loads.NewRepository(dbClient.DB()), docStore, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create load service", err)
		os.Exit(1)
	}

	shipperService, err := shippers.NewService(shippers.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create shipper service", err)
		os.Exit(1)
	}

	carrierService, err := carriers.NewService(carriers.NewRepository(dbClient.DB()), fileManager, "/uploads", logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create carrier service", err)
		os.Exit(1)
	}

	rateConService, err := rateconfirmations.NewService(
		rateconfirmations.NewRepository(dbClient.DB()),
		documents.NewPDFConverter(),
		docStore,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create rate confirmation service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			Sessions:       sessionManager,
			AuthService:    authService,
			AgentService:   agentService,
			LoadService:    loadService,
			ShipperService: shipperService,
			CarrierService: carrierService,
			RateConService: rateConService,
			UploadDir:      cfg.Storage.UploadDir,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
