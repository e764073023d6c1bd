package scaffold

import "fmt"

// PathExistsError means the target directory is already taken. Nothing has
// been written when this is returned.
type PathExistsError struct {
	Path string
}

func (e *PathExistsError) Error() string {
	return fmt.Sprintf("target %s already exists and is not empty", e.Path)
}

// WriteError wraps an I/O failure while creating the project tree. Files
// written before the failure are left in place.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
