package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/genricoloni/deskwall/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// plasmaScreens selects the desktops attached to a screen, in the order plasmashell reports them
const plasmaScreens = `function screens() {
	var all = desktops();
	var out = [];
	for (var i = 0; i < all.length; i++) {
		if (all[i].screen >= 0) {
			out.push(all[i]);
		}
	}
	return out;
}
`

const plasmaImageGroup = `["Wallpaper", "org.kde.image", "General"]`

// plasmaDefaultFillMode is what org.kde.image uses when FillMode was never written
const plasmaDefaultFillMode = 2

// PlasmaShell talks to KDE plasmashell through its scripting interface.
// Monitors are the desktop containments attached to a screen; their
// identifiers are containment ids.
type PlasmaShell struct {
	logger *zap.Logger
	client PlasmaClient
}

// NewPlasmaShell wraps an existing client
func NewPlasmaShell(logger *zap.Logger, client PlasmaClient) *PlasmaShell {
	return &PlasmaShell{
		logger: logger,
		client: client,
	}
}

func openPlasma(ctx context.Context, logger *zap.Logger) (domain.Backend, error) {
	client, err := NewStdPlasmaClient()
	if err != nil {
		return nil, fmt.Errorf("%w: session bus connection failed: %w", domain.ErrServiceUnavailable, err)
	}

	// Check if we were cancelled while connecting to D-Bus
	if err := ctx.Err(); err != nil {
		return nil, multierr.Append(err, client.Close())
	}

	p := NewPlasmaShell(logger, client)
	if _, err := p.MonitorCount(); err != nil {
		return nil, multierr.Append(
			fmt.Errorf("%w: plasmashell is not answering: %w", domain.ErrServiceUnavailable, err),
			client.Close(),
		)
	}

	logger.Info("Plasma wallpaper service connected")
	return p, nil
}

func (p *PlasmaShell) eval(script string) (string, error) {
	p.logger.Debug("Evaluating Plasma script", zap.Int("bytes", len(script)))
	out, err := p.client.EvaluateScript(script)
	if err != nil {
		return "", fmt.Errorf("plasmashell script failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func desktopID(monitorID string) (int, error) {
	id, err := strconv.Atoi(monitorID)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid Plasma desktop id %q", monitorID)
	}
	return id, nil
}

// jsString renders s as a JavaScript string literal
func jsString(s string) (string, error) {
	if err := checkText(s); err != nil {
		return "", err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrEncoding, err)
	}
	return string(b), nil
}

// MonitorCount returns the number of desktops attached to a screen
func (p *PlasmaShell) MonitorCount() (int, error) {
	out, err := p.eval(plasmaScreens + "print(screens().length);")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected desktop count %q", out)
	}
	return n, nil
}

// MonitorID returns the containment id of the desktop at index
func (p *PlasmaShell) MonitorID(index int) (string, error) {
	script := plasmaScreens + fmt.Sprintf(`var s = screens();
if (%[1]d >= s.length) {
	throw new Error("no desktop at index %[1]d");
}
print(s[%[1]d].id);`, index)

	out, err := p.eval(script)
	if err != nil {
		return "", err
	}
	if _, err := desktopID(out); err != nil {
		return "", err
	}
	return out, nil
}

// Wallpaper returns the image path configured on the desktop
func (p *PlasmaShell) Wallpaper(monitorID string) (string, error) {
	id, err := desktopID(monitorID)
	if err != nil {
		return "", err
	}

	out, err := p.eval(fmt.Sprintf(`var d = desktopById(%[1]d);
if (!d) {
	throw new Error("unknown desktop %[1]d");
}
d.currentConfigGroup = %[2]s;
print(d.readConfig("Image"));`, id, plasmaImageGroup))
	if err != nil {
		return "", err
	}
	return pathFromURL(out)
}

// SetWallpaper switches the desktop to the image plugin and sets its image
func (p *PlasmaShell) SetWallpaper(monitorID, path string) error {
	id, err := desktopID(monitorID)
	if err != nil {
		return err
	}
	if err := checkText(path); err != nil {
		return err
	}
	image, err := jsString(fileURL(path))
	if err != nil {
		return err
	}

	_, err = p.eval(fmt.Sprintf(`var d = desktopById(%[1]d);
if (!d) {
	throw new Error("unknown desktop %[1]d");
}
d.wallpaperPlugin = "org.kde.image";
d.currentConfigGroup = %[2]s;
d.writeConfig("Image", %[3]s);`, id, plasmaImageGroup, image))
	if err != nil {
		return err
	}

	p.logger.Info("Plasma wallpaper set", zap.String("desktop", monitorID), zap.String("path", path))
	return nil
}

// DisplayMode reads the fill mode of the first screen's desktop
func (p *PlasmaShell) DisplayMode() (domain.DisplayMode, error) {
	out, err := p.eval(plasmaScreens + fmt.Sprintf(`var s = screens();
if (s.length == 0) {
	throw new Error("no desktops attached to a screen");
}
s[0].currentConfigGroup = %s;
print(s[0].readConfig("FillMode", %d));`, plasmaImageGroup, plasmaDefaultFillMode))
	if err != nil {
		return 0, err
	}

	code, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected fill mode %q", out)
	}
	return plasmaMode(code)
}

// SetDisplayMode writes the fill mode to every desktop, since Plasma keeps it per desktop.
// The wallpaper plugin of each desktop is left as it is.
func (p *PlasmaShell) SetDisplayMode(mode domain.DisplayMode) error {
	code, err := plasmaFillMode(mode)
	if err != nil {
		return err
	}

	_, err = p.eval(fmt.Sprintf(`var all = desktops();
for (var i = 0; i < all.length; i++) {
	all[i].currentConfigGroup = %s;
	all[i].writeConfig("FillMode", %d);
}`, plasmaImageGroup, code))
	return err
}

// Release closes the D-Bus connection
func (p *PlasmaShell) Release() error {
	return p.client.Close()
}
