package scaffold

import "fmt"

// AlreadyExistsError reports that the target project root is already a
// directory. The operation is rejected before any mutation.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("directory '%s' already exists", e.Path)
}

// PathConflictError reports that a path is occupied by something that is not
// a directory, either the target root itself or a component hit during
// directory creation.
type PathConflictError struct {
	Path string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path '%s' exists and is not a directory", e.Path)
}

// FilesystemError wraps an OS-level failure (permissions, quota, name
// length) while creating a directory or writing a file.
type FilesystemError struct {
	Op   string // "create directory" or "write file"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
