package promptstore

import (
	"errors"
	"fmt"
)

var (
	ErrNoPromptFile = errors.New("no prompt file found")
	ErrFileNotFound = errors.New("file not found")
)

// NotFoundError carries the absolute path that was tried.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrFileNotFound }
