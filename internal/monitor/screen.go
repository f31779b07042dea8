package monitor

import (
	"fmt"

	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// Displays names the active displays for backends whose service has no
// monitor enumeration of its own
func Displays(logger *zap.Logger) []string {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to a single display")
		return []string{displayName(0)}
	}

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		bounds := screenshot.GetDisplayBounds(i)
		logger.Debug("Display detected",
			zap.Int("index", i),
			zap.Int("width", bounds.Dx()),
			zap.Int("height", bounds.Dy()))
		names = append(names, displayName(i))
	}
	return names
}

func displayName(i int) string {
	return fmt.Sprintf("display-%d", i)
}
