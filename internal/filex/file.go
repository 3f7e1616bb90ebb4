// Package filex contains filesystem helpers for the photo upload workflow:
// scratch-directory management, filename sanitization, and staging of
// incoming file bytes before they are pushed to object storage.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EnsureSubDir creates (if needed) and returns the absolute path of a
// subdirectory of the current working directory.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SanitizeFilename reduces a client-supplied filename to a safe base name:
// any path components are stripped, and every character outside
// [A-Za-z0-9._-] is replaced with an underscore. An empty or fully unsafe
// input sanitizes to "file".
func SanitizeFilename(name string) string {
	// Strip directories regardless of the client's path separator.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	s := strings.Trim(b.String(), "._")
	if s == "" {
		return "file"
	}
	return s
}

// SaveScratch copies src into dir under fileName and returns the full path
// of the staged file. The caller owns the file and must remove it when the
// upload finishes, successfully or not.
func SaveScratch(dir, fileName string, src io.Reader) (string, error) {
	path := filepath.Join(dir, fileName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}
