package domain

import (
	"fmt"
	"strings"
)

// Monitor is one display known to the desktop shell, as reported at enumeration time.
// It is a snapshot: setting a wallpaper does not update it.
type Monitor struct {
	// ID is the opaque, session-scoped handle assigned by the shell (a device path on Windows)
	ID string
	// Wallpaper is the path the shell reported for this monitor; the file may no longer exist
	Wallpaper string
}

// DisplayMode is the global policy for how wallpapers are positioned on every monitor
type DisplayMode int

const (
	// Center places the image at its native size in the middle of the screen
	Center DisplayMode = iota
	// Tile repeats the image across the screen
	Tile
	// Stretch scales the image to the screen, ignoring its aspect ratio
	Stretch
	// Fit scales the image to fit inside the screen, keeping its aspect ratio
	Fit
	// Fill scales the image to cover the screen, cropping the overflow
	Fill
	// Span stretches one image across all monitors
	Span

	// DisplayModeCount is the number of display modes. Backend lookup tables are sized by it.
	DisplayModeCount
)

var displayModeNames = [DisplayModeCount]string{
	Center:  "center",
	Tile:    "tile",
	Stretch: "stretch",
	Fit:     "fit",
	Fill:    "fill",
	Span:    "span",
}

// DisplayModes returns every display mode in declaration order
func DisplayModes() []DisplayMode {
	modes := make([]DisplayMode, 0, DisplayModeCount)
	for m := Center; m < DisplayModeCount; m++ {
		modes = append(modes, m)
	}
	return modes
}

// Valid reports whether m is one of the declared modes
func (m DisplayMode) Valid() bool {
	return m >= Center && m < DisplayModeCount
}

func (m DisplayMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
	return displayModeNames[m]
}

// ParseDisplayMode converts a case-insensitive mode name into a DisplayMode
func ParseDisplayMode(name string) (DisplayMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range displayModeNames {
		if n == name {
			return DisplayMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)",
		ErrUnsupportedMode, name, strings.Join(displayModeNames[:], ", "))
}
