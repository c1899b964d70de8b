package workspace

import (
	"errors"
	"fmt"
	"os"
)

// ErrDirectoryCreation marks a failure to create one of the working directories.
var ErrDirectoryCreation = errors.New("directory creation failed")

// DirectoryError reports which directory could not be created.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() []error { return []error{ErrDirectoryCreation, e.Err} }

// Ensure creates every directory in dirs, parents included. Existing
// directories are left untouched. The first failure is returned without retry.
func Ensure(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &DirectoryError{Path: dir, Err: err}
		}
	}
	return nil
}
