// Package shelltest provides an in-memory wallpaper service for tests.
package shelltest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/genricoloni/deskwall/internal/domain"
	"go.uber.org/zap"
)

// Method names accepted by FailOn and reported by Calls
const (
	MethodMonitorCount   = "MonitorCount"
	MethodMonitorID      = "MonitorID"
	MethodWallpaper      = "Wallpaper"
	MethodSetWallpaper   = "SetWallpaper"
	MethodDisplayMode    = "DisplayMode"
	MethodSetDisplayMode = "SetDisplayMode"
	MethodRelease        = "Release"
)

// Memory is a domain.Backend keeping monitors and wallpapers in memory.
// Like the real services it holds one display mode for every monitor.
type Memory struct {
	mu         sync.Mutex
	ids        []string
	wallpapers map[string]string
	mode       domain.DisplayMode
	failures   map[string]error
	calls      []string
	released   bool

	// OpenErr is returned by Open when set
	OpenErr error
}

// New creates a service with the given monitor identifiers, in enumeration order
func New(ids ...string) *Memory {
	return &Memory{
		ids:        ids,
		wallpapers: make(map[string]string),
		mode:       domain.Fill,
		failures:   make(map[string]error),
	}
}

// Assign stores a wallpaper without recording a call
func (m *Memory) Assign(monitorID, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallpapers[monitorID] = path
}

// SetMode stores the display mode without recording a call
func (m *Memory) SetMode(mode domain.DisplayMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}

// FailOn makes every later call of method return err
func (m *Memory) FailOn(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = err
}

// Open matches shell.Opener
func (m *Memory) Open(ctx context.Context, _ *zap.Logger) (domain.Backend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return m, nil
}

// Calls returns the methods invoked so far, in order
func (m *Memory) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// Released reports whether Release was called
func (m *Memory) Released() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.released
}

// WallpaperOf returns the stored wallpaper without recording a call
func (m *Memory) WallpaperOf(monitorID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wallpapers[monitorID]
}

// Mode returns the stored display mode without recording a call
func (m *Memory) Mode() domain.DisplayMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// enter records a call. The caller must hold mu.
func (m *Memory) enter(method string) error {
	m.calls = append(m.calls, method)
	if m.released {
		return errors.New("service used after release")
	}
	return m.failures[method]
}

func (m *Memory) known(monitorID string) error {
	if !slices.Contains(m.ids, monitorID) {
		return fmt.Errorf("unknown monitor %q", monitorID)
	}
	return nil
}

func (m *Memory) MonitorCount() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(MethodMonitorCount); err != nil {
		return 0, err
	}
	return len(m.ids), nil
}

func (m *Memory) MonitorID(index int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(MethodMonitorID); err != nil {
		return "", err
	}
	if index < 0 || index >= len(m.ids) {
		return "", fmt.Errorf("no monitor at index %d", index)
	}
	return m.ids[index], nil
}

func (m *Memory) Wallpaper(monitorID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(MethodWallpaper); err != nil {
		return "", err
	}
	if err := m.known(monitorID); err != nil {
		return "", err
	}
	return m.wallpapers[monitorID], nil
}

func (m *Memory) SetWallpaper(monitorID, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(MethodSetWallpaper); err != nil {
		return err
	}
	if err := m.known(monitorID); err != nil {
		return err
	}
	m.wallpapers[monitorID] = path
	return nil
}

func (m *Memory) DisplayMode() (domain.DisplayMode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(MethodDisplayMode); err != nil {
		return 0, err
	}
	return m.mode, nil
}

func (m *Memory) SetDisplayMode(mode domain.DisplayMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(MethodSetDisplayMode); err != nil {
		return err
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", domain.ErrUnsupportedMode, mode)
	}
	m.mode = mode
	return nil
}

// Release marks the service released; later calls fail
func (m *Memory) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(MethodRelease); err != nil {
		return err
	}
	m.released = true
	return nil
}
