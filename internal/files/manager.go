// Package files owns the lifecycle of temporary upload files: every
// uploaded table is spooled to disk under a unique name for the duration
// of one request and removed afterwards regardless of outcome.
package files

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions lists the upload formats the extraction step accepts.
var allowedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
}

// Manager provides temp file management for uploads
type Manager struct {
	dir    string
	logger *slog.Logger
}

// NewManager creates a file manager spooling into dir.
func NewManager(dir string, logger *slog.Logger) *Manager {
	return &Manager{
		dir:    dir,
		logger: logger.With(slog.String("component", "files")),
	}
}

// AllowedExt reports whether the (lowercased) extension of filename is an
// accepted upload format, and returns that extension.
func AllowedExt(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext, allowedExtensions[ext]
}

// SaveUpload spools an uploaded document to a uniquely named temp file and
// returns its path. The caller owns the file and must Cleanup it.
func (m *Manager) SaveUpload(r io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	path := filepath.Join(m.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	m.logger.Debug("saved upload", slog.String("path", path))
	return path, nil
}

// Cleanup removes temp files best-effort. Failures are logged, never
// returned: by the time cleanup runs the response is already decided.
func (m *Manager) Cleanup(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			m.logger.Warn("failed to clean up temp file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		m.logger.Debug("cleaned up temp file", slog.String("path", path))
	}
}
