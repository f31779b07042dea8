package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/genricoloni/deskwall/internal/monitor"
	"go.uber.org/zap"
)

const (
	gsettingsBinary   = "gsettings"
	backgroundSchema  = "org.gnome.desktop.background"
	interfaceSchema   = "org.gnome.desktop.interface"
	keyPictureURI     = "picture-uri"
	keyPictureURIDark = "picture-uri-dark"
	keyPictureOptions = "picture-options"
	keyColorScheme    = "color-scheme"
)

// CommandRunner executes an external program and returns its standard output
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w (output: %s)",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

// GnomeShell drives org.gnome.desktop.background through gsettings.
// GNOME keeps a single wallpaper for all monitors, so every monitor reports
// and receives the same path.
type GnomeShell struct {
	logger   *zap.Logger
	run      CommandRunner
	displays []string
}

// NewGnomeShell creates a GNOME backend over the given displays
func NewGnomeShell(logger *zap.Logger, run CommandRunner, displays []string) *GnomeShell {
	return &GnomeShell{
		logger:   logger,
		run:      run,
		displays: displays,
	}
}

func openGnome(ctx context.Context, logger *zap.Logger) (domain.Backend, error) {
	if _, err := exec.LookPath(gsettingsBinary); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	}

	g := NewGnomeShell(logger, execRunner{}, monitor.Displays(logger))
	if _, err := g.get(ctx, backgroundSchema, keyPictureOptions); err != nil {
		return nil, fmt.Errorf("%w: background schema unavailable: %w", domain.ErrServiceUnavailable, err)
	}

	logger.Info("GNOME wallpaper service connected", zap.Int("displays", len(g.displays)))
	return g, nil
}

func (g *GnomeShell) get(ctx context.Context, schema, key string) (string, error) {
	out, err := g.run.Run(ctx, gsettingsBinary, "get", schema, key)
	if err != nil {
		return "", err
	}
	return parseGVariantString(out)
}

func (g *GnomeShell) set(ctx context.Context, schema, key, value string) error {
	_, err := g.run.Run(ctx, gsettingsBinary, "set", schema, key, quoteGVariantString(value))
	return err
}

func (g *GnomeShell) checkDisplay(monitorID string) error {
	if !slices.Contains(g.displays, monitorID) {
		return fmt.Errorf("unknown monitor %q", monitorID)
	}
	return nil
}

// MonitorCount returns the number of detected displays
func (g *GnomeShell) MonitorCount() (int, error) {
	return len(g.displays), nil
}

// MonitorID returns the display identifier at index
func (g *GnomeShell) MonitorID(index int) (string, error) {
	if index < 0 || index >= len(g.displays) {
		return "", fmt.Errorf("no display at index %d", index)
	}
	return g.displays[index], nil
}

// Wallpaper returns the picture shown for the active color scheme
func (g *GnomeShell) Wallpaper(monitorID string) (string, error) {
	if err := g.checkDisplay(monitorID); err != nil {
		return "", err
	}

	ctx := context.Background()
	key := keyPictureURI
	if scheme, err := g.get(ctx, interfaceSchema, keyColorScheme); err == nil && scheme == "prefer-dark" {
		key = keyPictureURIDark
	}

	uri, err := g.get(ctx, backgroundSchema, key)
	if err != nil {
		return "", err
	}
	return pathFromURL(uri)
}

// SetWallpaper sets the picture for both the light and the dark color scheme
func (g *GnomeShell) SetWallpaper(monitorID, path string) error {
	if err := g.checkDisplay(monitorID); err != nil {
		return err
	}
	if err := checkText(path); err != nil {
		return err
	}

	ctx := context.Background()
	uri := fileURL(path)
	if err := g.set(ctx, backgroundSchema, keyPictureURI, uri); err != nil {
		return err
	}
	if err := g.set(ctx, backgroundSchema, keyPictureURIDark, uri); err != nil {
		return err
	}

	g.logger.Info("GNOME wallpaper set", zap.String("path", path))
	return nil
}

// DisplayMode reads picture-options
func (g *GnomeShell) DisplayMode() (domain.DisplayMode, error) {
	option, err := g.get(context.Background(), backgroundSchema, keyPictureOptions)
	if err != nil {
		return 0, err
	}
	return gnomeMode(option)
}

// SetDisplayMode writes picture-options
func (g *GnomeShell) SetDisplayMode(mode domain.DisplayMode) error {
	option, err := gnomePictureOption(mode)
	if err != nil {
		return err
	}
	return g.set(context.Background(), backgroundSchema, keyPictureOptions, option)
}

// Release is a no-op: gsettings holds no connection between calls
func (g *GnomeShell) Release() error {
	return nil
}

// gvariantEscapes maps the single-letter escapes of the GVariant text format
var gvariantEscapes = map[byte]rune{
	'a': '\a',
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

// parseGVariantString decodes the textual form of a GVariant string as printed by gsettings.
// Like the GLib parser, an escaped character without a special meaning stands for itself.
func parseGVariantString(out string) (string, error) {
	s := strings.TrimSpace(out)
	if len(s) < 2 || (s[0] != '\'' && s[0] != '"') || s[len(s)-1] != s[0] {
		return "", fmt.Errorf("unexpected gsettings value %q", s)
	}

	var b strings.Builder
	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(body) {
			return "", errors.New("dangling escape in gsettings value")
		}
		i++
		c = body[i]

		switch {
		case c == 'u' || c == 'U':
			digits := 4
			if c == 'U' {
				digits = 8
			}
			if i+digits >= len(body) {
				return "", fmt.Errorf("short \\%c escape in gsettings value %q", c, s)
			}
			code, err := strconv.ParseUint(body[i+1:i+1+digits], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return "", fmt.Errorf("invalid \\%c escape in gsettings value %q", c, s)
			}
			b.WriteRune(rune(code))
			i += digits
		case gvariantEscapes[c] != 0:
			b.WriteRune(gvariantEscapes[c])
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// quoteGVariantString renders s as a single-quoted GVariant string
func quoteGVariantString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\a", `\a`,
		"\b", `\b`,
		"\f", `\f`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
		"\v", `\v`,
	)
	return "'" + r.Replace(s) + "'"
}
