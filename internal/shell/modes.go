package shell

import (
	"fmt"

	"github.com/genricoloni/deskwall/internal/domain"
)

// Each table lists one native code per domain.DisplayMode, in declaration order.
// The blank arrays below fail to compile unless every table has exactly
// domain.DisplayModeCount entries.

// dwposCodes are DESKTOP_WALLPAPER_POSITION values
var dwposCodes = [...]uint32{
	0, // DWPOS_CENTER
	1, // DWPOS_TILE
	2, // DWPOS_STRETCH
	3, // DWPOS_FIT
	4, // DWPOS_FILL
	5, // DWPOS_SPAN
}

// plasmaUnsupported marks a mode with no Plasma FillMode equivalent
const plasmaUnsupported = -1

// plasmaFillModes are the org.kde.image FillMode values (Qt Image.FillMode)
var plasmaFillModes = [...]int{
	6,                 // Pad
	3,                 // Tile
	0,                 // Stretch
	1,                 // PreserveAspectFit
	2,                 // PreserveAspectCrop
	plasmaUnsupported, // Plasma cannot span one image across screens
}

// gnomePictureOptions are org.gnome.desktop.background picture-options values
var gnomePictureOptions = [...]string{
	"centered",
	"wallpaper",
	"stretched",
	"scaled",
	"zoom",
	"spanned",
}

var (
	_ [len(dwposCodes) - int(domain.DisplayModeCount)]struct{}
	_ [int(domain.DisplayModeCount) - len(dwposCodes)]struct{}
	_ [len(plasmaFillModes) - int(domain.DisplayModeCount)]struct{}
	_ [int(domain.DisplayModeCount) - len(plasmaFillModes)]struct{}
	_ [len(gnomePictureOptions) - int(domain.DisplayModeCount)]struct{}
	_ [int(domain.DisplayModeCount) - len(gnomePictureOptions)]struct{}
)

func checkMode(mode domain.DisplayMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", domain.ErrUnsupportedMode, mode)
	}
	return nil
}

func dwposCode(mode domain.DisplayMode) (uint32, error) {
	if err := checkMode(mode); err != nil {
		return 0, err
	}
	return dwposCodes[mode], nil
}

func dwposMode(code uint32) (domain.DisplayMode, error) {
	for m, c := range dwposCodes {
		if c == code {
			return domain.DisplayMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown wallpaper position %d", domain.ErrUnsupportedMode, code)
}

func plasmaFillMode(mode domain.DisplayMode) (int, error) {
	if err := checkMode(mode); err != nil {
		return 0, err
	}
	code := plasmaFillModes[mode]
	if code == plasmaUnsupported {
		return 0, fmt.Errorf("%w: %v is not available on Plasma", domain.ErrUnsupportedMode, mode)
	}
	return code, nil
}

func plasmaMode(code int) (domain.DisplayMode, error) {
	for m, c := range plasmaFillModes {
		if c == code && c != plasmaUnsupported {
			return domain.DisplayMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown Plasma fill mode %d", domain.ErrUnsupportedMode, code)
}

func gnomePictureOption(mode domain.DisplayMode) (string, error) {
	if err := checkMode(mode); err != nil {
		return "", err
	}
	return gnomePictureOptions[mode], nil
}

func gnomeMode(option string) (domain.DisplayMode, error) {
	for m, o := range gnomePictureOptions {
		if o == option {
			return domain.DisplayMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown GNOME picture option %q", domain.ErrUnsupportedMode, option)
}
