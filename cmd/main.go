package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/sbilibin2017/exercise-tracker/internal/config"
	"github.com/sbilibin2017/exercise-tracker/internal/handlers"
	"github.com/sbilibin2017/exercise-tracker/internal/health"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/metrics"
	"github.com/sbilibin2017/exercise-tracker/internal/middlewares"
	"github.com/sbilibin2017/exercise-tracker/internal/repositories"
	"github.com/sbilibin2017/exercise-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/exercise-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	shutdownTimeout = 10 * time.Second
	healthInterval  = 15 * time.Second
)

// @title exercise-tracker API
// @version 1.0.0
// @description Exercise tracker: user registry and exercise logs
// @host localhost:3000
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// stores groups the record store implementations selected by APP_STORE.
type stores struct {
	userReader     services.UserReader
	userWriter     services.UserWriter
	exerciseReader services.ExerciseReader
	exerciseWriter services.ExerciseWriter
	pinger         health.Pinger // nil for the in-memory store
	close          func() error
}

// openStores connects to PostgreSQL and applies migrations, or builds the
// in-memory store.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.Store == config.StoreMemory {
		logger.Log.Info("Using in-memory record store")
		users := repositories.NewMemoryUserRepository()
		exercises := repositories.NewMemoryExerciseRepository()
		return &stores{
			userReader:     users,
			userWriter:     users,
			exerciseReader: exercises,
			exerciseWriter: exercises,
			close:          func() error { return nil },
		}, nil
	}

	logger.Log.Info("Connecting to PostgreSQL")
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.DatabaseMaxOpen)
	db.SetMaxIdleConns(cfg.DatabaseMaxIdle)

	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("PostgreSQL migration failed: %w", err)
	}

	return &stores{
		userReader:     repositories.NewUserReadRepository(db, cfg.DatabaseTimeout),
		userWriter:     repositories.NewUserWriteRepository(db, cfg.DatabaseTimeout),
		exerciseReader: repositories.NewExerciseReadRepository(db, cfg.DatabaseTimeout),
		exerciseWriter: repositories.NewExerciseWriteRepository(db, cfg.DatabaseTimeout),
		pinger:         db,
		close:          db.Close,
	}, nil
}

// newRouter wires handlers, middleware and operational endpoints.
func newRouter(cfg *config.Config, users *services.UserService, exercises *services.ExerciseService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	}))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.NotFound(handlers.NewNotFoundHandler())

	listUsersHandler := handlers.NewListUsersHandler(users)

	r.Route("/api/exercise", func(r chi.Router) {
		r.Post("/new-user", handlers.NewRegisterHandler(users))
		r.Get("/new-user", listUsersHandler)
		r.Get("/users", listUsersHandler)
		r.Post("/add", handlers.NewAddExerciseHandler(exercises))
		r.Get("/log", handlers.NewLogHandler(exercises))
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// run initializes the logger, the record store, the optional Redis cache and
// Kafka writer, and serves HTTP (plus gRPC health when configured) until ctx
// is cancelled or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogDevelopment); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	metrics.Init()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	var cache services.UserCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewUserCacheRepository(rdb, cfg.RedisTTL)
		logger.Log.Infow("User cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.RedisTTL)
	}

	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
		logger.Log.Infow("Event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	userService := services.NewUserService(st.userReader, st.userWriter, events)
	exerciseService := services.NewExerciseService(st.userReader, cache, st.exerciseWriter, st.exerciseReader, events)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(cfg, userService, exerciseService),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
			return err
		}
		logger.Log.Info("HTTP server stopped gracefully")
		return nil
	})

	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
		if err != nil {
			stop()
			g.Wait()
			return fmt.Errorf("gRPC listen failed: %w", err)
		}
		hs := health.NewServer()

		g.Go(func() error {
			if err := hs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("gRPC server failed: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			ticker := time.NewTicker(healthInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					hs.Stop()
					return nil
				case <-ticker.C:
					hs.Check(gctx, st.pinger)
				}
			}
		})
	}

	return g.Wait()
}
