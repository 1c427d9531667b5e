// Package fsutil resolves user-supplied file paths.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// FirstExisting returns the first of paths, after home expansion, that names
// a regular file.
func FirstExisting(paths ...string) (string, bool) {
	for _, p := range paths {
		exp, err := ExpandHome(p)
		if err != nil || exp == "" {
			continue
		}
		fi, err := os.Stat(exp)
		if err == nil && fi.Mode().IsRegular() {
			return exp, true
		}
	}
	return "", false
}
