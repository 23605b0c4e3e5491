// Package svgfile reads SVG documents from disk and creates output files.
package svgfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the only input extension Load accepts, compared without case.
const Extension = ".svg"

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyPath = errors.New("path cannot be empty")
	ErrExtension = errors.New("invalid file extension")
	ErrNotFound  = errors.New("file not found")
)

// Check verifies that path names an existing regular .svg file.
func Check(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != Extension {
		return fmt.Errorf("%w: expected %s, got %q", ErrExtension, Extension, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}

	return nil
}

// Load returns the content of the .svg file at path. An empty file is not an
// error.
func Load(path string) (string, error) {
	if err := Check(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Create opens path for writing, truncating it and creating missing parent
// directories.
func Create(path string) (*os.File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}
