package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/proxionix/unit-tools/internal/config"
	"github.com/proxionix/unit-tools/pkg/closer"
	"github.com/proxionix/unit-tools/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type app struct {
	di   *di
	args []string
}

func New(ctx context.Context, args []string) (*app, error) {
	a := &app{args: args}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(_ context.Context) error {
		// Stderr sync failures are expected on some platforms.
		_ = logger.L().Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// Run executes the requested command. The command context is cancelled on
// SIGINT/SIGTERM so an in-flight generation can stop cleanly.
func (a *app) Run(ctx context.Context) error {
	defer gracefulShutdown()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return a.dispatch(egCtx, a.args)
	})

	return eg.Wait()
}

func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := closer.CloseAll(ctx); err != nil {
		logger.Error(ctx, "error during shutdown", logger.ErrorF(err))
	}
}
