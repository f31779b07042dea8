package main

import (
	"context"
	"fmt"

	"github.com/genricoloni/deskwall/internal/config"
	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/genricoloni/deskwall/internal/monitor"
	"github.com/genricoloni/deskwall/internal/shell"
	"github.com/genricoloni/deskwall/internal/wallpaper"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AppOptions is the dependency graph of one invocation.
// *config.AppConfig must be supplied by the caller.
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		newLogger,
		shell.SelectOpener,
		fx.Annotate(shell.NewConnection, fx.As(new(domain.Service))),
		newFs,
		wallpaper.NewAccessor,
	),
)

// newLogger creates a zap logger writing to stderr, so stdout only carries command output
func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel())
	zc.Encoding = cfg.LogFormat()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newFs() afero.Fs {
	return afero.NewOsFs()
}

type session struct {
	fx.In

	Logger   *zap.Logger
	Service  domain.Service
	Accessor *wallpaper.Accessor
}

// withSession opens the wallpaper service, enumerates the monitors once and
// runs op. The service is closed before returning, whatever op returns.
func withSession(ctx context.Context, cfg *config.AppConfig, overrides []fx.Option,
	op func(s session, dir *monitor.Directory) error,
) (err error) {
	var s session
	app := fx.New(
		AppOptions,
		fx.Supply(cfg),
		fx.Options(overrides...),
		fx.Populate(&s),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, app.Stop(context.Background()))
	}()

	dir, err := monitor.NewDirectory(s.Logger, s.Service)
	if err != nil {
		return fmt.Errorf("failed to retrieve available monitors: %w", err)
	}
	return op(s, dir)
}
