package domain

// Service is the platform desktop-shell wallpaper service.
// Implementations perform any text transcoding the platform requires and
// never reorder monitors.
//
//go:generate mockgen -destination=mocks/service_mock.go -package=mocks github.com/genricoloni/deskwall/internal/domain Service,Backend
type Service interface {
	// MonitorCount returns the number of monitors the shell knows about
	MonitorCount() (int, error)

	// MonitorID returns the identifier of the monitor at the given position
	MonitorID(index int) (string, error)

	// Wallpaper returns the path currently assigned to the monitor
	Wallpaper(monitorID string) (string, error)

	// SetWallpaper assigns a path to the monitor
	SetWallpaper(monitorID, path string) error

	// DisplayMode returns the current global display mode
	DisplayMode() (DisplayMode, error)

	// SetDisplayMode changes the display mode of every monitor
	SetDisplayMode(mode DisplayMode) error
}

// Backend is an activated Service that owns platform resources.
type Backend interface {
	Service

	// Release frees the service handle and then the runtime behind it.
	// It is called exactly once.
	Release() error
}
