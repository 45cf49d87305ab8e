package applier

import "fmt"

// File operations reported in FileError.
const (
	OpList  = "list"
	OpRead  = "read"
	OpWrite = "write"
	OpHook  = "hook"
)

// FileError reports a filesystem or hook failure while applying a theme.
// Files rewritten before the failure are not restored.
type FileError struct {
	Program string
	Path    string
	Op      string
	Err     error
}

func (e *FileError) Error() string {
	if e.Op == OpHook {
		return fmt.Sprintf("program %q: hook %q: %v", e.Program, e.Path, e.Err)
	}
	return fmt.Sprintf("program %q: %s %s: %v", e.Program, e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
