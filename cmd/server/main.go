package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/vedran77/missive/internal/config"
	"github.com/vedran77/missive/internal/database"
	"github.com/vedran77/missive/internal/repository"
	"github.com/vedran77/missive/internal/repository/memory"
	postgresrepo "github.com/vedran77/missive/internal/repository/postgres"
	"github.com/vedran77/missive/internal/service"
	"github.com/vedran77/missive/internal/transport/http/handlers"
	"github.com/vedran77/missive/internal/transport/http/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "err", err)
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	var (
		userRepo    repository.UserRepository
		messageRepo repository.MessageRepository
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		userRepo = store.Users()
		messageRepo = store.Messages()
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		pool, err := database.Connect(ctx, database.DSN(cfg))
		if err != nil {
			return err
		}
		defer pool.Close()
		logger.Info("connected to database")

		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		userRepo = postgresrepo.NewUserRepo(pool)
		messageRepo = postgresrepo.NewMessageRepo(pool)
	}

	// Services
	hasher, err := service.NewPasswordHasher(cfg.PasswordHash, cfg.BcryptCost)
	if err != nil {
		return err
	}
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, service.PasswordStrategy(userRepo, hasher))
	messageService := service.NewMessageService(messageRepo, userRepo, cfg.MaxMessageLength)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	messageHandler := handlers.NewMessageHandler(messageService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)

	// Auth middleware
	auth := middleware.Auth(service.TokenStrategy(userRepo, tokens), logger)

	mux := handlers.NewRouter(auth, authHandler, messageHandler, userHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           middleware.CORS(middleware.Logging(logger)(mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
