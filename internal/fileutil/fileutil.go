// Package fileutil writes rendered output to disk.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath returns the file path for one app's rendered output.
func OutputPath(directory string, appID int, name, ext string) string {
	filename := fmt.Sprintf("%d", appID)
	if clean := SanitizeFilename(name); clean != "" {
		filename += " - " + clean
	}
	return filepath.Join(directory, filename+"."+strings.TrimPrefix(ext, "."))
}

// SanitizeFilename cleans a filename by replacing problematic characters
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	for _, c := range []string{"<", ">", "\"", "|", "?", "*"} {
		name = strings.ReplaceAll(name, c, "")
	}
	return strings.TrimSpace(name)
}

// FileExists checks if a file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	return true, nil
}
