package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable means the shell service could not be activated
	ErrServiceUnavailable = errors.New("desktop wallpaper service unavailable")
	// ErrService means a single call against an activated service failed
	ErrService = errors.New("desktop wallpaper service call failed")
	// ErrNotFound means no valid wallpaper file could be resolved for a monitor
	ErrNotFound = errors.New("wallpaper not found")
	// ErrEncoding means a string could not be transcoded for the service
	ErrEncoding = errors.New("text cannot be encoded for the desktop service")
	// ErrInvalidPath means a wallpaper path does not name an accessible regular file
	ErrInvalidPath = errors.New("invalid path")
	// ErrMonitorOutOfRange means a monitor index is outside the enumerated range
	ErrMonitorOutOfRange = errors.New("monitor index out of range")
	// ErrConnectionClosed means the service connection was used after teardown
	ErrConnectionClosed = errors.New("service connection is closed")
	// ErrUnsupportedMode means a display mode is unknown or not offered by the backend
	ErrUnsupportedMode = errors.New("unsupported display mode")
)

// ServiceError annotates err with op and makes it match ErrService exactly once
func ServiceError(op string, err error) error {
	if errors.Is(err, ErrService) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrService, err)
}

// PartialFailureError is returned when a wallpaper path was assigned but the
// following display mode change failed. The path change is not rolled back.
type PartialFailureError struct {
	MonitorID string
	Path      string
	Mode      DisplayMode
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("wallpaper of monitor %s was set to %s but display mode %s could not be applied: %v",
		e.MonitorID, e.Path, e.Mode, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
