// Package hostfs is the seam between the resource caches and the host's file system.
//
// The main types are:
//   - [FS]: the narrow set of read-only operations the caches need
//   - [Real]: production implementation using the [os] package
//   - [Mem]: in-memory implementation which counts accesses, for tests and
//     sandboxed hosts
//
// Errors returned by an FS are classified into a small taxonomy with [Classify],
// independent of the host platform.
package hostfs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// FS defines the read-only file-system operations used by the resource world
// cache and the font loader.
//
// Paths use OS semantics (like the os package and path/filepath), not the
// slash-separated paths of the standard library's io/fs package.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type FS interface {
	// Stat returns file info. See [os.Stat].
	// Returns an error wrapping [fs.ErrNotExist] if the file doesn't exist.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// ReadDir reads a directory and returns its entries sorted by name.
	// See [os.ReadDir].
	ReadDir(path string) ([]os.DirEntry, error)
}

// Kind classifies file-system errors.
type Kind int

const (
	// KindOther is any I/O error not covered by a more specific kind.
	KindOther Kind = iota
	// KindNotFound means the path does not exist.
	KindNotFound
	// KindPermission means access to the path was denied.
	KindPermission
	// KindIsDirectory means a file was expected, but the path names a directory.
	KindIsDirectory
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "access denied"
	case KindIsDirectory:
		return "is a directory"
	default:
		return "i/o error"
	}
}

// ErrIsDirectory is returned by [Mem] when a directory is read as a file.
// [Classify] maps it, as well as the host's EISDIR, to [KindIsDirectory].
var ErrIsDirectory = errors.New("is a directory")

// Classify maps an error returned by an FS onto a Kind.
// A nil error is classified as KindOther.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, ErrIsDirectory), errors.Is(err, syscall.EISDIR):
		return KindIsDirectory
	}
	return KindOther
}

// Real implements [FS] using the real file system.
//
// All methods are pure passthroughs to the [os] package with identical
// behavior and error semantics.
type Real struct{}

// NewReal returns a new [Real] file system.
func NewReal() *Real {
	return &Real{}
}

// Stat is a passthrough wrapper for [os.Stat].
func (r *Real) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile is a passthrough wrapper for [os.ReadFile].
func (r *Real) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths are provided by the embedding host
	return os.ReadFile(path)
}

// ReadDir is a passthrough wrapper for [os.ReadDir].
func (r *Real) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Compile-time interface checks.
var (
	_ FS = (*Real)(nil)
	_ FS = (*Mem)(nil)
)
