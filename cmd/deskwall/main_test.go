package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/genricoloni/deskwall/internal/config"
	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/genricoloni/deskwall/internal/shell"
	"github.com/genricoloni/deskwall/internal/shell/shelltest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	err := fx.ValidateApp(
		AppOptions,
		fx.Supply(config.Default()),
	)

	if err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.Default())
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	logger.Info("Test logger initialization")
}

// harness runs commands against an in-memory service and filesystem
type harness struct {
	svc *shelltest.Memory
	fs  afero.Fs
}

func newHarness(ids ...string) *harness {
	return &harness{
		svc: shelltest.New(ids...),
		fs:  afero.NewMemMapFs(),
	}
}

func (h *harness) file(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(h.fs, path, []byte("png"), 0o644))
}

func (h *harness) run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut,
		fx.NopLogger,
		fx.Decorate(func(shell.Opener) shell.Opener { return h.svc.Open }),
		fx.Decorate(func(afero.Fs) afero.Fs { return h.fs }),
	)
	return code, out.String(), errOut.String()
}

func TestGetPrintsPath(t *testing.T) {
	h := newHarness("m0", "m1")
	h.file(t, "/pictures/current.jpg")
	h.svc.Assign("m1", "/pictures/current.jpg")

	code, stdout, stderr := h.run("get", "1")

	assert.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "/pictures/current.jpg\n", stdout)
	assert.True(t, h.svc.Released(), "connection must be closed after the command")
}

func TestGetStaleWallpaper(t *testing.T) {
	h := newHarness("m0")
	h.svc.Assign("m0", "/pictures/deleted.jpg")

	code, stdout, stderr := h.run("get")

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to get the desktop wallpaper")
	assert.True(t, h.svc.Released())
}

func TestSetMissingFile(t *testing.T) {
	h := newHarness("m0")

	code, stdout, stderr := h.run("set", "/pictures/missing.jpg")

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid path")
	assert.NotContains(t, h.svc.Calls(), shelltest.MethodSetWallpaper)
	assert.True(t, h.svc.Released())
}

func TestSetWithScale(t *testing.T) {
	h := newHarness("m0", "m1")
	h.file(t, "/pictures/new.jpg")

	code, stdout, stderr := h.run("set", "/pictures/new.jpg", "--scale=fill", "1")

	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)
	assert.Equal(t, "/pictures/new.jpg", h.svc.WallpaperOf("m1"))
	assert.Equal(t, domain.Fill, h.svc.Mode())
	assert.Equal(t, []string{
		shelltest.MethodMonitorCount,
		shelltest.MethodMonitorID,
		shelltest.MethodWallpaper,
		shelltest.MethodMonitorID,
		shelltest.MethodWallpaper,
		shelltest.MethodSetWallpaper,
		shelltest.MethodSetDisplayMode,
		shelltest.MethodRelease,
	}, h.svc.Calls())
}

func TestSetDefaultsToSpanOnFirstMonitor(t *testing.T) {
	h := newHarness("m0", "m1")
	h.file(t, "/pictures/wide.jpg")
	h.svc.SetMode(domain.Center)

	code, _, stderr := h.run("set", "-m", "0", "/pictures/wide.jpg")

	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "/pictures/wide.jpg", h.svc.WallpaperOf("m0"))
	assert.Equal(t, domain.Span, h.svc.Mode())
}

func TestSetInvalidScale(t *testing.T) {
	h := newHarness("m0")
	h.file(t, "/pictures/a.jpg")

	code, _, stderr := h.run("set", "/pictures/a.jpg", "--scale=zoom")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "unsupported display mode")
	assert.Empty(t, h.svc.Calls(), "flag errors happen before the service is opened")
}

func TestSetPartialFailure(t *testing.T) {
	h := newHarness("m0")
	h.file(t, "/pictures/a.jpg")
	h.svc.FailOn(shelltest.MethodSetDisplayMode, errors.New("position rejected"))

	code, stdout, stderr := h.run("set", "/pictures/a.jpg")

	assert.Equal(t, exitPartial, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "partial failure")
	assert.Equal(t, "/pictures/a.jpg", h.svc.WallpaperOf("m0"))
	assert.True(t, h.svc.Released())
}

func TestMonitorOutOfRange(t *testing.T) {
	h := newHarness("m0", "m1")

	code, _, stderr := h.run("get", "5")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "the available monitors are from 0 to 1 but 5 was given")
	assert.True(t, h.svc.Released())
}

func TestMonitorGivenTwice(t *testing.T) {
	h := newHarness("m0", "m1")

	code, _, stderr := h.run("get", "-m", "1", "0")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "both")
}

func TestEnumerationFailure(t *testing.T) {
	h := newHarness("m0")
	h.svc.FailOn(shelltest.MethodMonitorID, errors.New("RPC_E_DISCONNECTED"))

	code, _, stderr := h.run("get")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "failed to retrieve available monitors")
	assert.True(t, h.svc.Released())
}

func TestServiceUnavailable(t *testing.T) {
	h := newHarness("m0")
	h.svc.OpenErr = errors.New("class not registered")

	code, stdout, stderr := h.run("get")

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, domain.ErrServiceUnavailable.Error())
	assert.False(t, h.svc.Released())
}

func TestMonitorsAndMode(t *testing.T) {
	h := newHarness("m0", "m1")
	h.svc.Assign("m0", "/pictures/a.jpg")
	h.svc.SetMode(domain.Tile)

	code, stdout, stderr := h.run("monitors")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "0\tm0\t/pictures/a.jpg\n1\tm1\t\n", stdout)

	h.svc = shelltest.New("m0")
	h.svc.SetMode(domain.Tile)
	code, stdout, stderr = h.run("mode")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "tile\n", stdout)
}

func TestInvalidConfiguration(t *testing.T) {
	h := newHarness("m0")

	code, _, stderr := h.run("--backend=cde", "get")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "unknown backend")
	assert.Empty(t, h.svc.Calls())
}

func TestVersion(t *testing.T) {
	h := newHarness()

	code, stdout, _ := h.run("--version")

	assert.Equal(t, exitOK, code)
	assert.True(t, strings.Contains(stdout, version), stdout)
}
