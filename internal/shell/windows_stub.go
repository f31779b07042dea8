//go:build !windows
// +build !windows

package shell

import (
	"context"
	"fmt"

	"github.com/genricoloni/deskwall/internal/domain"
	"go.uber.org/zap"
)

// openWindows reports the COM wallpaper service as unavailable outside Windows
func openWindows(ctx context.Context, logger *zap.Logger) (domain.Backend, error) {
	logger.Warn("The Windows backend was selected on a non-Windows platform")
	return nil, fmt.Errorf("%w: the COM desktop wallpaper service only exists on Windows", domain.ErrServiceUnavailable)
}
