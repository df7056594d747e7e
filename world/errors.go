package world

import (
	"errors"
	"fmt"

	"github.com/npillmayer/fontworld/hostfs"
)

// Kind classifies a FileError.
type Kind int

const (
	Other        Kind = iota // any other I/O error
	NotFound                 // file does not exist
	AccessDenied             // permission denied
	IsDirectory              // path names a directory
	NotSource                // file is not valid UTF-8 text
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "file not found"
	case AccessDenied:
		return "access denied"
	case IsDirectory:
		return "is a directory"
	case NotSource:
		return "not a text source"
	}
	return "i/o error"
}

// Sentinel errors to check a FileError's kind with errors.Is.
var (
	ErrNotFound       = errors.New("world: file not found")
	ErrAccessDenied   = errors.New("world: access denied")
	ErrIsDirectory    = errors.New("world: is a directory")
	ErrNotSource      = errors.New("world: not a text source")
	ErrTooManySources = errors.New("world: too many sources")
)

// FileError is the error type returned by a World.
type FileError struct {
	Kind Kind
	Path string // canonical path
	Err  error  // underlying error, may be nil
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("world: %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("world: %s: %s", e.Path, e.Kind)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for e's kind.
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrAccessDenied:
		return e.Kind == AccessDenied
	case ErrIsDirectory:
		return e.Kind == IsDirectory
	case ErrNotSource:
		return e.Kind == NotSource
	}
	return false
}

// fileError wraps an error of the host file system.
func fileError(path string, err error) *FileError {
	kind := Other
	switch hostfs.Classify(err) {
	case hostfs.KindNotFound:
		kind = NotFound
	case hostfs.KindPermission:
		kind = AccessDenied
	case hostfs.KindIsDirectory:
		kind = IsDirectory
	}
	return &FileError{Kind: kind, Path: path, Err: err}
}
