package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/config"
	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/company-profiles/internal/handler/http"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/cron"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/database"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/jwt"
	"github.com/cmlabs-hris/company-profiles/internal/repository/postgresql"
	"github.com/cmlabs-hris/company-profiles/internal/repository/sqlite"
	"github.com/cmlabs-hris/company-profiles/internal/service/directory"
	"github.com/go-chi/httplog/v3"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logLevel := parseLogLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "company-profiles"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		listingRepo listing.ListingRepository
		seed        func(ctx context.Context) error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()

		if err := database.MigratePostgreSQL(ctx, db); err != nil {
			log.Fatal("Error migrating database: ", err)
		}
		listingRepo = postgresql.NewListingRepository(db)
		seed = func(ctx context.Context) error {
			return postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
				_, err := fixtures.Seed(txCtx, listingRepo)
				return err
			})
		}
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatal("Error opening sqlite database: ", err)
		}
		defer db.Close()

		if err := database.MigrateSQLite(ctx, db); err != nil {
			log.Fatal("Error migrating database: ", err)
		}
		listingRepo = sqlite.NewListingRepository(db)
		seed = func(ctx context.Context) error {
			_, err := fixtures.Seed(ctx, listingRepo)
			return err
		}
	default:
		log.Fatal("Unsupported database driver: ", cfg.Database.Driver)
	}

	var rdb *redis.Client
	if cfg.Cache.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			// the directory falls back to the store on cache errors
			slog.Warn("Redis unreachable, serving without cache", "addr", cfg.Cache.Addr, "error", err)
		}
	}

	if cfg.App.Seed {
		if err := seed(ctx); err != nil {
			log.Fatal("Error seeding listings: ", err)
		}
	}

	directoryService := directory.NewDirectoryService(listingRepo, directory.Config{
		BaseURL:              cfg.App.BaseURL,
		RouteSegment:         cfg.Directory.RouteSegment,
		HideFilledPositions:  cfg.Directory.HideFilledPositions,
		PrettyPermalinks:     cfg.Directory.PrettyPermalinks,
		IncludeEmptyIndustry: cfg.Directory.IncludeEmptyIndustry,
		SiteName:             cfg.App.SiteName,
		SiteDescription:      cfg.App.SiteDescription,
		TitleSeparator:       cfg.Directory.TitleSeparator,
		CacheTTL:             cfg.Cache.TTL,
	}, rdb)

	if _, err := directoryService.EnsureCompanySlugs(ctx); err != nil {
		log.Fatal("Error backfilling company slugs: ", err)
	}

	scheduler := cron.NewScheduler()
	if err := cron.NewSlugJobs(directoryService).RegisterJobs(scheduler, cfg.Maintenance.SlugBackfillInterval); err != nil {
		log.Fatal("Error registering cron jobs: ", err)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AdminExpiration)
	companyHandler := appHTTP.NewCompanyHandler(directoryService, cfg.Directory.RouteSegment)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       logLevel,
		AllowedOrigins: cfg.App.CORSOrigins,
		RouteSegment:   cfg.Directory.RouteSegment,
	}, JWTService, companyHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver, "cache", rdb != nil)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
