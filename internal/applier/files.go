package applier

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/fileutil"
)

// programFiles lists the regular files a program targets: the files directly
// inside RootDir followed by the files matching Path, without duplicates.
func (a *Applier) programFiles(program config.Program) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}
		// Symlinks count when they point at a regular file.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	if program.RootDir != "" {
		dir := fileutil.ExpandHome(program.RootDir, a.home)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, &FileError{Program: program.Name, Path: dir, Op: OpList, Err: err}
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			add(filepath.Join(dir, entry.Name()))
		}
	}

	if program.Path != "" {
		pattern := fileutil.ExpandHome(program.Path, a.home)
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, &FileError{Program: program.Name, Path: pattern, Op: OpList, Err: fmt.Errorf("invalid glob pattern")}
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &FileError{Program: program.Name, Path: pattern, Op: OpList, Err: err}
		}
		sort.Strings(matches)
		for _, match := range matches {
			add(match)
		}
	}

	return files, nil
}
