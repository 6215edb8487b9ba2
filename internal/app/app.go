package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MSSkowron/registrar/internal/config"
	"github.com/MSSkowron/registrar/internal/database"
	"github.com/MSSkowron/registrar/internal/repository"
	"github.com/MSSkowron/registrar/internal/server/rest"
	"github.com/MSSkowron/registrar/internal/service"
	"github.com/MSSkowron/registrar/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Run connects to the configured store and serves HTTP until ctx is cancelled.
// The store connection is verified before the listener starts.
func Run(ctx context.Context, cfg *config.Config) error {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	userRepository, closeStore, err := newUserRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to %s store: %w", cfg.Store, err)
	}
	defer closeStore()

	server := rest.NewServer(
		service.NewUserService(userRepository),
		rest.WithAddress(net.JoinHostPort(cfg.ServerAddress, strconv.Itoa(cfg.ServerPort))),
		rest.WithReadTimeout(cfg.ReadTimeout),
		rest.WithWriteTimeout(cfg.WriteTimeout),
		rest.WithRequestTimeout(cfg.RequestTimeout),
		rest.WithStaticFile(cfg.StaticFile),
	)

	return serve(ctx, server, cfg.ShutdownTimeout)
}

// serve binds the server address, then serves until ctx is cancelled.
func serve(ctx context.Context, server *rest.Server, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to create tcp listener on %s: %w", server.Addr, err)
	}

	logger.Info(fmt.Sprintf("Server running on port: %d", ln.Addr().(*net.TCPAddr).Port))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to run server on %s: %w", ln.Addr(), err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		logger.Info("Server stopped")
		return nil
	})

	return g.Wait()
}

func newUserRepository(ctx context.Context, cfg *config.Config) (repository.UserRepository, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	switch cfg.Store {
	case config.StoreMongo:
		db, err := database.NewMongoDatabase(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}

		closeStore := func() {
			if err := db.Close(context.Background()); err != nil {
				logger.Error(err.Error())
			}
		}
		return repository.NewMongoUserRepository(db.Collection(cfg.MongoCollection)), closeStore, nil
	case config.StorePostgres:
		db, err := database.NewPostgresDatabase(connectCtx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		closeStore := func() {
			if err := db.Close(); err != nil {
				logger.Error(err.Error())
			}
		}
		return repository.NewPostgresUserRepository(db), closeStore, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
