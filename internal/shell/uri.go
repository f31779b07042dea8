package shell

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/genricoloni/deskwall/internal/domain"
)

const fileScheme = "file://"

// checkText rejects strings the desktop services cannot carry
func checkText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q is not valid UTF-8", domain.ErrEncoding, s)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %q contains a NUL character", domain.ErrEncoding, s)
	}
	return nil
}

// fileURL converts an absolute path into a file:// URL
func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}

// pathFromURL converts a file:// URL back into a path; plain paths are returned unchanged
func pathFromURL(value string) (string, error) {
	if !strings.HasPrefix(value, fileScheme) {
		return value, nil
	}
	u, err := url.Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid wallpaper URL %q: %w", value, err)
	}
	return u.Path, nil
}
