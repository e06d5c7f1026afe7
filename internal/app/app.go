package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	analyticsrepo "github.com/heartmarshall/polls-backend/internal/adapter/postgres/analytics"
	commentrepo "github.com/heartmarshall/polls-backend/internal/adapter/postgres/comment"
	pollrepo "github.com/heartmarshall/polls-backend/internal/adapter/postgres/poll"
	userrepo "github.com/heartmarshall/polls-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/polls-backend/internal/adapter/redis"
	"github.com/heartmarshall/polls-backend/internal/auth"
	"github.com/heartmarshall/polls-backend/internal/config"
	"github.com/heartmarshall/polls-backend/internal/service/analytics"
	authsvc "github.com/heartmarshall/polls-backend/internal/service/auth"
	"github.com/heartmarshall/polls-backend/internal/service/comment"
	"github.com/heartmarshall/polls-backend/internal/service/poll"
	"github.com/heartmarshall/polls-backend/internal/service/user"
	"github.com/heartmarshall/polls-backend/internal/service/vote"
	"github.com/heartmarshall/polls-backend/internal/transport/dataloader"
	"github.com/heartmarshall/polls-backend/internal/transport/middleware"
	"github.com/heartmarshall/polls-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		results, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	var rdb *goredis.Client
	if cfg.Cache.Enabled() {
		rdb, err = redis.NewClient(ctx, cfg.Cache)
		if err != nil {
			return err
		}
		defer rdb.Close()
		logger.Info("report cache enabled", slog.String("addr", cfg.Cache.Addr))
	}

	handler, cleanup := NewHandler(cfg, pool, rdb, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires repositories, services and the REST layer over pool.
// rdb may be nil to run without the report cache. The returned cleanup
// stops background workers.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, logger *slog.Logger) (http.Handler, func()) {
	// Repositories.
	users := userrepo.New(pool)
	polls := pollrepo.New(pool)
	comments := commentrepo.New(pool)
	stats := analyticsrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	authService := authsvc.NewService(logger, users, tokens, hasher)
	userService := user.NewService(logger, users, hasher)
	pollService := poll.NewService(logger, polls, stats, users, tx, cfg.Polls)
	voteService := vote.NewService(logger, polls)
	commentService := comment.NewService(logger, comments, polls, cfg.Comments)

	var analyticsService *analytics.Service
	if rdb != nil {
		analyticsService = analytics.NewService(logger, stats, users, redis.NewReportCache(rdb, cfg.Cache.ReportTTL))
	} else {
		analyticsService = analytics.NewService(logger, stats, users, nil)
	}

	// Transport.
	components := map[string]rest.Pinger{"database": pool}
	if rdb != nil {
		components["redis"] = rest.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	handlers := Handlers{
		Health:  rest.NewHealthHandler(components, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		User:    rest.NewUserHandler(userService, analyticsService, logger),
		Admin:   rest.NewAdminHandler(userService, logger),
		Poll:    rest.NewPollHandler(pollService, voteService, logger),
		Comment: rest.NewCommentHandler(commentService, logger),
		Search:  rest.NewSearchHandler(analyticsService, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst, rateLimitCleanupInterval)

	global := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		dataloader.Middleware(users),
	)

	return NewRouter(handlers, global, limiter.Limit()), limiter.Stop
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
