// Package fileutil provides filesystem helpers shared by the stores and the applier.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ExpandHome replaces a leading "~" in path with home.
// Paths such as "~user/x" are returned unchanged.
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ErrNotWritable is returned when an existing file may not be replaced.
var ErrNotWritable = errors.New("file is not writable")

// WriteFileAtomic writes data to a temporary file next to path and renames it
// over path. An existing file keeps its exact permission bits and must be
// writable; perm (subject to the umask) is used for new files.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	exists := false
	if info, err := os.Stat(path); err == nil {
		exists = true
		perm = info.Mode().Perm()
		if err := checkWritable(path, perm); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}

	// OpenFile masks perm with the umask.
	if exists {
		if err := file.Chmod(perm); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("chmod %s: %w", path, err)
		}
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// checkWritable fails for files without any write bit, even for root, and for
// files the current user cannot open for writing.
func checkWritable(path string, perm os.FileMode) error {
	if perm&0o222 == 0 {
		return fmt.Errorf("%s: %w", path, ErrNotWritable)
	}
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrNotWritable, err)
	}
	return file.Close()
}

// EnsureParentDir creates the parent directory of path if it does not exist.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
