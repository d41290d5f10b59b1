package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"stocktrader/internal/config"
	"stocktrader/internal/database"
	"stocktrader/internal/facades"
	"stocktrader/internal/handlers"
	"stocktrader/internal/logger"
	"stocktrader/internal/middlewares"
	"stocktrader/internal/repositories"
	"stocktrader/internal/services"
	"stocktrader/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Parse(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, quote provider, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := database.MigrateUp(db.DB); err != nil {
		logger.Log.Fatal("schema migration failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for trade events, optional
	var kafkaWriter *kafka.Writer
	if cfg.KafkaBrokers != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		logger.Log.Infof("Kafka trade events enabled, topic %s", cfg.KafkaTopic)
	}

	// Initialize sessions backed by Redis
	sessionRepo := repositories.NewSessionRepository(rdb, time.Duration(cfg.SessionExpSecond)*time.Second)
	sess := sessions.New(sessionRepo)

	// Initialize repositories and the quote facade
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	tradeReadRepo := repositories.NewTradeReadRepository(db, middlewares.GetTxFromContext)
	tradeWriteRepo := repositories.NewTradeWriteRepository(db, middlewares.GetTxFromContext)
	quoteCacheRepo := repositories.NewQuoteCacheRepository(rdb, time.Duration(cfg.QuoteCacheSecond)*time.Second)
	quoteFacade := facades.NewQuoteHTTPFacade(nil, cfg.QuoteAPIURL, cfg.QuoteAPIKey)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	quoteService := services.NewQuoteService(quoteFacade, quoteCacheRepo)
	tradeService := services.NewTradeService(tradeWriteRepo, tradeReadRepo, userWriteRepo, quoteService, eventWriter(kafkaWriter))
	portfolioService := services.NewPortfolioService(tradeReadRepo, userReadRepo, quoteService)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sess)
	logoutHandler := handlers.NewLogoutHandler(sess)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	buyHandler := handlers.NewBuyHandler(tradeService)
	sellHandler := handlers.NewSellHandler(tradeService, portfolioService)
	indexHandler := handlers.NewIndexHandler(portfolioService)
	historyHandler := handlers.NewHistoryHandler(portfolioService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.NoCacheMiddleware)

	// Public routes
	r.Get("/register", registerHandler)
	r.Post("/register", registerHandler)
	r.Get("/login", loginHandler)
	r.Post("/login", loginHandler)
	r.Get("/logout", logoutHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(sess))
		r.Get("/", indexHandler)
		r.Get("/quote", quoteHandler)
		r.Post("/quote", quoteHandler)
		r.Get("/history", historyHandler)

		// Buy and sell mutate cash and trades together, so they run
		// inside one database transaction per request.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Get("/buy", buyHandler)
			r.Post("/buy", buyHandler)
			r.Get("/sell", sellHandler)
			r.Post("/sell", sellHandler)
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// eventWriter converts a possibly nil *kafka.Writer into the service
// interface without producing a non-nil interface around a nil pointer.
func eventWriter(w *kafka.Writer) services.EventWriter {
	if w == nil {
		return nil
	}
	return w
}
