package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tingly-dev/bot-admin/internal/constant"
	"github.com/tingly-dev/bot-admin/internal/typ"
	"github.com/tingly-dev/bot-admin/pkg/fs"
)

// ErrEmptyMarker is returned when the marker file holds no path
var ErrEmptyMarker = errors.New("config: marker file is empty")

// ResolveMarkerPath returns the marker file location, defaulting to the working directory
func ResolveMarkerPath(markerPath string) string {
	if strings.TrimSpace(markerPath) == "" {
		return constant.MarkerFileName
	}
	return markerPath
}

// ReadDBPath reads the database path from the marker file.
// Surrounding whitespace and newlines are trimmed and ~ is expanded.
func ReadDBPath(markerPath string) (string, error) {
	markerPath = ResolveMarkerPath(markerPath)
	logrus.Debugf("Reading database path from marker file: %s", markerPath)

	data, err := os.ReadFile(markerPath)
	if err != nil {
		return "", typ.NewConfigError("read marker", err)
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", typ.NewConfigError("read marker", fmt.Errorf("%w: %s", ErrEmptyMarker, markerPath))
	}

	dbPath, err := fs.ExpandPath(raw)
	if err != nil {
		return "", typ.NewConfigError("read marker", err)
	}
	return dbPath, nil
}

// WriteDBPath stores dbPath in the marker file as a single line and returns the
// absolute path written
func WriteDBPath(markerPath, dbPath string) (string, error) {
	markerPath = ResolveMarkerPath(markerPath)

	absPath, err := fs.ExpandPath(strings.TrimSpace(dbPath))
	if err != nil {
		return "", typ.NewConfigError("write marker", err)
	}
	if absPath == "" {
		return "", typ.NewConfigError("write marker", errors.New("database path is empty"))
	}

	if dir := filepath.Dir(markerPath); dir != "." {
		if err := fs.EnsureDir(dir); err != nil {
			return "", typ.NewConfigError("write marker", err)
		}
	}
	if err := os.WriteFile(markerPath, []byte(absPath+"\n"), 0644); err != nil {
		return "", typ.NewConfigError("write marker", err)
	}
	logrus.Debugf("Wrote database path %s to marker file %s", absPath, markerPath)
	return absPath, nil
}
