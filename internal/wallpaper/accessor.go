package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Accessor reads and assigns per-monitor wallpapers through a shell service
type Accessor struct {
	logger *zap.Logger
	svc    domain.Service
	fs     afero.Fs
}

// NewAccessor creates an accessor validating paths against fs
func NewAccessor(logger *zap.Logger, svc domain.Service, fs afero.Fs) *Accessor {
	return &Accessor{
		logger: logger,
		svc:    svc,
		fs:     fs,
	}
}

// Canonical returns the absolute, cleaned form of path.
// Symbolic links are left unresolved.
func Canonical(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidPath)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrInvalidPath, path, err)
	}
	return filepath.Clean(abs), nil
}

func (a *Accessor) regularFile(path string) error {
	info, err := a.fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}

// serviceError labels err with op unless a lower layer already reported it as a service error
func serviceError(op string, err error) error {
	if errors.Is(err, domain.ErrService) {
		return err
	}
	return domain.ServiceError(op, err)
}

// Get returns the wallpaper of m if it still names a regular file.
// Every failure matches domain.ErrNotFound; failures of the service itself
// also match domain.ErrService.
func (a *Accessor) Get(m domain.Monitor) (string, error) {
	path, err := a.svc.Wallpaper(m.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNotFound, serviceError("get wallpaper", err))
	}
	if path == "" {
		return "", fmt.Errorf("%w: monitor %s has no wallpaper", domain.ErrNotFound, m.ID)
	}

	if err := a.regularFile(path); err != nil {
		a.logger.Debug("Recorded wallpaper is stale",
			zap.String("monitor", m.ID),
			zap.String("path", path),
			zap.Error(err))
		return "", fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return path, nil
}

// Set assigns path to m, then applies mode to every monitor.
// The path is canonicalised and must name a regular file before the service is called.
// When only the display mode fails, a *domain.PartialFailureError is returned and
// the assigned path stays in place.
func (a *Accessor) Set(m domain.Monitor, path string, mode domain.DisplayMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", domain.ErrUnsupportedMode, mode)
	}

	canonical, err := Canonical(path)
	if err != nil {
		return err
	}
	if err := a.regularFile(canonical); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", domain.ErrInvalidPath, canonical)
		}
		return fmt.Errorf("%w: %w", domain.ErrInvalidPath, err)
	}

	if err := a.svc.SetWallpaper(m.ID, canonical); err != nil {
		return serviceError("set wallpaper", err)
	}
	a.logger.Debug("Wallpaper assigned", zap.String("monitor", m.ID), zap.String("path", canonical))

	if err := a.svc.SetDisplayMode(mode); err != nil {
		return &domain.PartialFailureError{
			MonitorID: m.ID,
			Path:      canonical,
			Mode:      mode,
			Err:       serviceError("set display mode", err),
		}
	}
	a.logger.Debug("Display mode applied", zap.Stringer("mode", mode))
	return nil
}

// DisplayMode returns the global display mode
func (a *Accessor) DisplayMode() (domain.DisplayMode, error) {
	mode, err := a.svc.DisplayMode()
	if err != nil {
		return 0, serviceError("get display mode", err)
	}
	return mode, nil
}
