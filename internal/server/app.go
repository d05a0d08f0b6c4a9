// Package server initializes and runs the authentication server: it wires
// the group parameters, the randomness source, the in-memory session
// state and the protocol engine, handles OS signals, and starts the gRPC
// endpoint.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/reymom/zkp-chaum-pedersen/internal/logging"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/config"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/services"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/sessions"
	"github.com/reymom/zkp-chaum-pedersen/internal/zkp"

	gs "github.com/reymom/zkp-chaum-pedersen/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	group := zkp.Group1024()
	if c.GroupBits == 2048 {
		group = zkp.Group2048()
	}

	as := services.NewAuthService(group, zkp.CryptoSource{}, sessions.NewRegistry(), sessions.NewAuthIndex(), c)

	return &App{config: c, logger: logger, authService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
