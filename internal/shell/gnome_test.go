package shell

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSettings emulates gsettings over an in-memory key store
type fakeSettings struct {
	values map[string]string
	calls  []string
	err    error
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: map[string]string{
		backgroundSchema + " " + keyPictureURI:     "'file:///usr/share/backgrounds/default.png'",
		backgroundSchema + " " + keyPictureURIDark: "'file:///usr/share/backgrounds/default-dark.png'",
		backgroundSchema + " " + keyPictureOptions: "'zoom'",
		interfaceSchema + " " + keyColorScheme:     "'default'",
	}}
}

func (f *fakeSettings) Run(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if f.err != nil {
		return "", f.err
	}
	if name != gsettingsBinary || len(args) < 3 {
		return "", errors.New("unexpected command")
	}

	key := args[1] + " " + args[2]
	switch args[0] {
	case "get":
		v, ok := f.values[key]
		if !ok {
			return "", errors.New("No such key")
		}
		return v + "\n", nil
	case "set":
		f.values[key] = args[3]
		return "", nil
	}
	return "", errors.New("unexpected subcommand")
}

func TestGnomeSetAndGet(t *testing.T) {
	settings := newFakeSettings()
	g := NewGnomeShell(zap.NewNop(), settings, []string{"display-0", "display-1"})

	require.NoError(t, g.SetWallpaper("display-1", "/home/user/it's mine.jpg"))
	assert.Equal(t, `'file:///home/user/it%27s%20mine.jpg'`, settings.values[backgroundSchema+" "+keyPictureURI])
	assert.Equal(t, settings.values[backgroundSchema+" "+keyPictureURI], settings.values[backgroundSchema+" "+keyPictureURIDark])

	// one wallpaper for every display
	for _, id := range []string{"display-0", "display-1"} {
		path, err := g.Wallpaper(id)
		require.NoError(t, err)
		assert.Equal(t, "/home/user/it's mine.jpg", path)
	}
}

func TestGnomeDarkScheme(t *testing.T) {
	settings := newFakeSettings()
	settings.values[interfaceSchema+" "+keyColorScheme] = "'prefer-dark'"
	g := NewGnomeShell(zap.NewNop(), settings, []string{"display-0"})

	path, err := g.Wallpaper("display-0")
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/backgrounds/default-dark.png", path)
}

func TestGnomeUnknownDisplay(t *testing.T) {
	settings := newFakeSettings()
	g := NewGnomeShell(zap.NewNop(), settings, []string{"display-0"})

	_, err := g.Wallpaper("display-3")
	assert.Error(t, err)
	assert.Error(t, g.SetWallpaper("display-3", "/a.png"))
	assert.Empty(t, settings.calls)

	_, err = g.MonitorID(1)
	assert.Error(t, err)
}

func TestGnomeDisplayMode(t *testing.T) {
	settings := newFakeSettings()
	g := NewGnomeShell(zap.NewNop(), settings, []string{"display-0"})

	mode, err := g.DisplayMode()
	require.NoError(t, err)
	assert.Equal(t, domain.Fill, mode)

	require.NoError(t, g.SetDisplayMode(domain.Span))
	assert.Equal(t, "'spanned'", settings.values[backgroundSchema+" "+keyPictureOptions])

	settings.values[backgroundSchema+" "+keyPictureOptions] = "'none'"
	_, err = g.DisplayMode()
	assert.ErrorIs(t, err, domain.ErrUnsupportedMode)
}

func TestGnomeCommandFailure(t *testing.T) {
	settings := newFakeSettings()
	settings.err = errors.New("dconf unavailable")
	g := NewGnomeShell(zap.NewNop(), settings, []string{"display-0"})

	_, err := g.DisplayMode()
	assert.ErrorContains(t, err, "dconf unavailable")
}

func TestParseGVariantString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"'zoom'\n", "zoom", false},
		{`"it's"`, "it's", false},
		{`'it\'s'`, "it's", false},
		{`'back\\slash'`, `back\slash`, false},
		{`'line\nbreak\ttab'`, "line\nbreak\ttab", false},
		{`'caf\u00e9'`, "café", false},
		{`'\U0001F5BC frame'`, "\U0001F5BC frame", false},
		{`'\"quoted\"'`, `"quoted"`, false},
		{`'\u00e'`, "", true},
		{`'\uzzzz'`, "", true},
		{`'\UFFFFFFFF'`, "", true},
		{"''", "", false},
		{"zoom", "", true},
		{"'unterminated", "", true},
		{`'dangling\'`, "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseGVariantString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestQuoteGVariantStringRoundTrip(t *testing.T) {
	for _, s := range []string{"plain", "it's", `C:\path`, "", `'\'`, "two\nlines\tand tab", "café"} {
		got, err := parseGVariantString(quoteGVariantString(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
