package shader

import (
	"errors"
	"fmt"
)

// ErrCompilerNotFound is returned when an external compiler executable
// cannot be located.
var ErrCompilerNotFound = errors.New("shader compiler not found")

// CompilationError reports a failed compiler invocation.
type CompilationError struct {
	Tool     string
	Task     Task
	Format   Format
	ExitCode int // -1 when the process did not exit normally or was not started
	Err      error
}

func (e *CompilationError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("compile %s %s/%s with %s: exit status %d", e.Format, e.Task.Source, e.Task.Entry, e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("compile %s %s/%s with %s: %v", e.Format, e.Task.Source, e.Task.Entry, e.Tool, e.Err)
}

func (e *CompilationError) Unwrap() error { return e.Err }

// FilesystemError reports an unreadable, unwritable or undeletable file.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
