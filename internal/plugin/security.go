package plugin

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/internal/xdg"
)

// maxPanicMessageLen bounds sanitized panic messages, in bytes.
const maxPanicMessageLen = 200

// absPathPattern matches absolute file paths inside panic messages.
var absPathPattern = regexp.MustCompile(`(?:/[\w.-]+)+`)

// ResolveDir turns a configured plugin directory into an absolute path,
// expanding a leading "~". A relative path with a ".." segment is rejected
// with ErrPathTraversal; "my..plugins" is a plain name and is accepted.
func ResolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", errors.New("plugin directory is empty")
	}

	expanded, err := xdg.ExpandPath(dir)
	if err != nil {
		return "", errors.Wrapf(err, "cannot expand %q", dir)
	}

	if !filepath.IsAbs(expanded) && slices.Contains(strings.Split(filepath.ToSlash(expanded), "/"), "..") {
		return "", errors.Wrapf(ErrPathTraversal, "%q escapes the working directory", dir)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, "cannot make %q absolute", dir)
	}

	return abs, nil
}

// ValidateExtension reports ErrInvalidExtension unless the suffix of path is
// one of allowed. Suffixes match exactly: "hello.SO" is not a Go plugin.
// An empty allow list accepts nothing.
func ValidateExtension(path string, allowed []string) error {
	ext := filepath.Ext(path)

	switch {
	case ext == "":
		return errors.Wrapf(ErrInvalidExtension, "%s has no extension", filepath.Base(path))
	case !slices.Contains(allowed, ext):
		return errors.Wrapf(ErrInvalidExtension, "%q is not one of %v", ext, allowed)
	}

	return nil
}

// SanitizePanicMessage prepares a recovered panic value for the log: only
// the first line is kept, absolute paths become "[path]" and the result is
// cut to maxPanicMessageLen bytes on a rune boundary.
func SanitizePanicMessage(msg string) string {
	msg, _, _ = strings.Cut(msg, "\n")
	msg = strings.TrimSpace(absPathPattern.ReplaceAllString(msg, "[path]"))

	if len(msg) <= maxPanicMessageLen {
		return msg
	}

	cut := maxPanicMessageLen
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}

	return msg[:cut] + "..."
}
