package shell

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/genricoloni/deskwall/internal/config"
	"github.com/genricoloni/deskwall/internal/domain"
	"go.uber.org/zap"
)

var openers = map[string]Opener{
	config.BackendWindows: openWindows,
	config.BackendPlasma:  openPlasma,
	config.BackendGnome:   openGnome,
}

// SelectOpener returns the opener for the configured backend.
// "auto" picks one from the running platform and desktop session.
func SelectOpener(cfg *config.AppConfig) (Opener, error) {
	name, err := resolveBackend(cfg.Backend(), runtime.GOOS, os.Getenv("XDG_CURRENT_DESKTOP"))
	if err != nil {
		return nil, err
	}

	open, ok := openers[name]
	if !ok {
		return unsupportedPlatform(runtime.GOOS), nil
	}
	return named(name, open), nil
}

// resolveBackend maps a configured backend name to a concrete one.
// An empty result means no backend exists for goos.
func resolveBackend(name, goos, desktop string) (string, error) {
	switch name {
	case config.BackendWindows, config.BackendPlasma, config.BackendGnome:
		return name, nil
	case config.BackendAuto, "":
	default:
		return "", fmt.Errorf("unknown backend %q", name)
	}

	switch goos {
	case "windows":
		return config.BackendWindows, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		for _, d := range strings.Split(desktop, ":") {
			if strings.EqualFold(strings.TrimSpace(d), "KDE") {
				return config.BackendPlasma, nil
			}
		}
		return config.BackendGnome, nil
	}
	return "", nil
}

func named(name string, open Opener) Opener {
	return func(ctx context.Context, logger *zap.Logger) (domain.Backend, error) {
		logger.Debug("Opening wallpaper service", zap.String("backend", name))
		return open(ctx, logger)
	}
}

func unsupportedPlatform(goos string) Opener {
	return func(context.Context, *zap.Logger) (domain.Backend, error) {
		return nil, fmt.Errorf("%w: no desktop wallpaper service is known on %s", domain.ErrServiceUnavailable, goos)
	}
}
