// Package util holds small filesystem helpers shared by the CLI and config packages.
package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading "~" to the user's home directory, expands $VAR and
// ${VAR} references and cleans the result. An empty path stays empty.
//
//	"~/neptune/application.properties" -> "/home/user/neptune/application.properties"
//	"${NEPTUNE_HOME}/.env"             -> "/opt/neptune/.env"
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = home + strings.TrimPrefix(path, "~")
	}

	return filepath.Clean(os.ExpandEnv(path)), nil
}

// ExistingFile expands path and reports whether it names an existing file.
// A missing file is not an error; any other stat failure is.
func ExistingFile(path string) (string, bool, error) {
	expanded, err := ExpandPath(path)
	if err != nil || expanded == "" {
		return expanded, false, err
	}

	info, err := os.Stat(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return expanded, false, nil
	case err != nil:
		return expanded, false, err
	case info.IsDir():
		return expanded, false, fmt.Errorf("%s is a directory", expanded)
	}
	return expanded, true, nil
}
