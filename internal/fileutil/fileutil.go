package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileExists checks if a file exists at the given path. Stat errors other
// than "not found" also report false; use statFile to tell them apart.
func FileExists(filePath string) bool {
	exists, err := statFile(filePath)
	return err == nil && exists
}

// statFile reports whether a regular file exists at filePath. A missing path
// is not an error.
func statFile(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", filePath, err)
	}
	return !info.IsDir(), nil
}

// skipExisting reports whether a write to filePath should be skipped because
// the file exists and overwrite is off.
func skipExisting(filePath string, overwrite bool) (bool, error) {
	if overwrite {
		return false, nil
	}
	return statFile(filePath)
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	skip, err := skipExisting(filePath, overwrite)
	if err != nil {
		return false, err
	}
	if skip {
		return false, nil
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}

	// Write the file
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, err
	}

	return true, nil
}

// WriteJSONFile writes data as JSON to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteJSONFile(data any, filePath string, overwrite bool) (bool, error) {
	skip, err := skipExisting(filePath, overwrite)
	if err != nil {
		return false, err
	}
	if skip {
		slog.Info("JSON file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	slog.Info("Writing JSON file", "filename", filePath, "overwrite", overwrite)
	written, err := WriteFileWithOverwrite(filePath, append(jsonData, '\n'), 0644, overwrite)
	if err != nil {
		return false, fmt.Errorf("failed to write JSON file: %w", err)
	}

	return written, nil
}
