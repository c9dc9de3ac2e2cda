package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/config"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/repository"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-dashboard/transport/rest"
	"github.com/rocketscienceinc/tictactoe-dashboard/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// NewLogger - JSON logger at the configured level. Unknown levels fall back to info.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var slogLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel}))
}

// OpenProfiles - opens the profile database and builds the profile manager on it.
func OpenProfiles(ctx context.Context, logger *slog.Logger, path string) (*usecase.ProfileManager, func() error, error) {
	sqliteStorage, err := storage.NewSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		_ = sqliteStorage.Close()
		return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
	}

	profileRepo := repository.NewProfileRepository(sqliteStorage)

	return usecase.NewProfileManager(logger, profileRepo), sqliteStorage.Close, nil
}

// RunApp - runs the HTTP and WebSocket servers until a signal arrives or one of them fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	profileManager, closeProfiles, err := OpenProfiles(ctx, logger, conf.SQLiteStoragePath)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeProfiles(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage)
	gameRepo := repository.NewGameRepository(redisStorage)
	gameManager := usecase.NewGameManager(logger, playerRepo, gameRepo)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		return rest.New(logger, profileManager).Start(groupCtx, conf.HTTPPort)
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		return websocket.New(logger, gameManager).Start(groupCtx, conf.SocketPort)
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}
