package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CacheDirEnv overrides the directory git libraries are checked out into.
const CacheDirEnv = "LOGO_HOME"

// DefaultCacheDir returns $LOGO_HOME, falling back to ~/.logo.
func DefaultCacheDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(CacheDirEnv)); dir != "" {
		return filepath.Abs(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cache: locate home directory: %w", err)
	}
	return filepath.Join(home, ".logo"), nil
}

// LibraryCheckoutDir is where a pinned git library lives inside the cache.
func LibraryCheckoutDir(cacheDir, name, version string) string {
	return filepath.Join(cacheDir, "libs", SanitizePathSegment(name), SanitizePathSegment(version))
}

// SanitizePathSegment maps a library name or version onto a single safe
// directory name.
func SanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
