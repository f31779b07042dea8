package shell

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/genricoloni/deskwall/internal/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Opener initialises a platform runtime and activates its wallpaper service.
// On failure it must leave nothing initialised.
type Opener func(ctx context.Context, logger *zap.Logger) (domain.Backend, error)

type connState int

const (
	stateIdle connState = iota
	stateOpen
	stateClosed
)

// Connection owns the activated backend for one process.
// It is the only holder of the backend and refuses every call after Close.
// Calls are serialised; the backend is never used concurrently.
type Connection struct {
	logger  *zap.Logger
	open    Opener
	mu      sync.Mutex
	state   connState
	backend domain.Backend
}

// New creates an unopened connection
func New(logger *zap.Logger, open Opener) *Connection {
	return &Connection{
		logger: logger,
		open:   open,
	}
}

// NewConnection creates a connection whose lifetime follows the fx application:
// it is opened on start and closed on stop
func NewConnection(lc fx.Lifecycle, logger *zap.Logger, open Opener) *Connection {
	c := New(logger, open)
	lc.Append(fx.Hook{
		OnStart: c.Open,
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	return c
}

// Open activates the wallpaper service
func (c *Connection) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case stateOpen:
		return errors.New("service connection is already open")
	case stateClosed:
		return domain.ErrConnectionClosed
	}

	backend, err := c.open(ctx, c.logger)
	if err != nil {
		c.logger.Debug("Service activation failed", zap.Error(err))
		if errors.Is(err, domain.ErrServiceUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	}

	c.backend = backend
	c.state = stateOpen
	c.logger.Debug("Service connection opened")
	return nil
}

// Close releases the backend. It must be called exactly once;
// later calls return ErrConnectionClosed.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case stateIdle:
		return errors.New("service connection was never opened")
	case stateClosed:
		return domain.ErrConnectionClosed
	}

	err := c.backend.Release()
	c.backend = nil
	c.state = stateClosed

	if err != nil {
		c.logger.Warn("Service teardown reported errors", zap.Error(err))
		return fmt.Errorf("release service: %w", err)
	}
	c.logger.Debug("Service connection closed")
	return nil
}

// call runs fn against the open backend and tags its failure as a service error
func (c *Connection) call(op string, fn func(b domain.Backend) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case stateIdle:
		return fmt.Errorf("%s: service connection is not open", op)
	case stateClosed:
		return fmt.Errorf("%s: %w", op, domain.ErrConnectionClosed)
	}

	if err := fn(c.backend); err != nil {
		return domain.ServiceError(op, err)
	}
	return nil
}

// MonitorCount returns the number of monitors reported by the service
func (c *Connection) MonitorCount() (n int, err error) {
	err = c.call("get monitor count", func(b domain.Backend) error {
		n, err = b.MonitorCount()
		return err
	})
	return n, err
}

// MonitorID returns the identifier at the given position
func (c *Connection) MonitorID(index int) (id string, err error) {
	err = c.call(fmt.Sprintf("get identifier of monitor %d", index), func(b domain.Backend) error {
		id, err = b.MonitorID(index)
		return err
	})
	return id, err
}

// Wallpaper returns the path the service holds for the monitor
func (c *Connection) Wallpaper(monitorID string) (path string, err error) {
	err = c.call("get wallpaper", func(b domain.Backend) error {
		path, err = b.Wallpaper(monitorID)
		return err
	})
	return path, err
}

// SetWallpaper assigns path to the monitor
func (c *Connection) SetWallpaper(monitorID, path string) error {
	return c.call("set wallpaper", func(b domain.Backend) error {
		return b.SetWallpaper(monitorID, path)
	})
}

// DisplayMode returns the global display mode
func (c *Connection) DisplayMode() (mode domain.DisplayMode, err error) {
	err = c.call("get display mode", func(b domain.Backend) error {
		mode, err = b.DisplayMode()
		return err
	})
	return mode, err
}

// SetDisplayMode changes the global display mode
func (c *Connection) SetDisplayMode(mode domain.DisplayMode) error {
	return c.call("set display mode", func(b domain.Backend) error {
		return b.SetDisplayMode(mode)
	})
}
