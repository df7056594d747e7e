/*
Package world holds the resource world cache.

A World maps file paths to in-memory resources. Every path is canonicalized
first, so that different spellings of one path share a single cache slot.
For every slot the World memoizes two independent outcomes, failures included:

▪︎ Resolve interprets the file as a text source and interns it, yielding a SourceID;

▪︎ File reads the file as raw bytes, yielding a shared fontworld.Buffer.

Each outcome is computed at most once per canonical path. Later calls return
the remembered result, even if the file has changed or vanished in the meantime.

Interned sources are never removed or moved; a SourceID stays valid for the
lifetime of its World.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package world

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/fontworld"
	"github.com/npillmayer/fontworld/hostfs"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding/unicode"
)

// tracer writes to trace with key 'tyse.resources'
func tracer() tracing.Trace {
	return tracing.Select("tyse.resources")
}

// World is a resource world cache. It is safe for concurrent use; concurrent
// requests for one canonical path observe a single read.
type World struct {
	fsys hostfs.FS
	root string

	mu    sync.Mutex       // guards paths
	paths map[string]*slot // canonical path → memoized outcomes

	srcMu   sync.RWMutex // guards sources
	sources []*Source    // append-only
}

// Option configures a World.
type Option func(*World)

// WithFS sets the file system a World reads from. The default is the host's
// real file system.
func WithFS(fsys hostfs.FS) Option {
	return func(w *World) {
		w.fsys = fsys
	}
}

// WithRoot sets the directory relative paths are resolved against. The
// default is the working directory at the time the World is created.
func WithRoot(dir string) Option {
	return func(w *World) {
		w.root = dir
	}
}

// New creates an empty World.
func New(opts ...Option) *World {
	w := &World{
		paths: make(map[string]*slot),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.fsys == nil {
		w.fsys = hostfs.NewReal()
	}
	if w.root == "" {
		if wd, err := os.Getwd(); err == nil {
			w.root = wd
		} else {
			w.root = string(filepath.Separator)
		}
	}
	if abs, err := filepath.Abs(w.root); err == nil {
		w.root = abs
	}
	return w
}

// slot holds the memoized outcomes for one canonical path.
type slot struct {
	source memo[SourceID]
	buffer memo[fontworld.Buffer]
}

// memo remembers the first outcome of a fallible computation.
type memo[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (m *memo[T]) get(compute func() (T, error)) (T, error) {
	m.once.Do(func() {
		m.val, m.err = compute()
	})
	return m.val, m.err
}

// Canonical returns the canonical form of path: relative paths are joined to
// the World's root, and the result is lexically cleaned.
// Symbolic links are not followed.
func (w *World) Canonical(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, path)
	}
	return filepath.Clean(path)
}

func (w *World) slot(canonical string) *slot {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.paths[canonical]
	if !ok {
		s = &slot{}
		w.paths[canonical] = s
	}
	return s
}

// Resolve interprets the file at path as a text source and returns its ID.
//
// The file must not be a directory and must contain valid UTF-8; a leading
// byte order mark is dropped. The first outcome for a canonical path is
// remembered: later calls neither read nor decode again.
// Errors are of type *FileError.
func (w *World) Resolve(path string) (SourceID, error) {
	canonical := w.Canonical(path)
	return w.slot(canonical).source.get(func() (SourceID, error) {
		data, err := w.read(canonical)
		if err != nil {
			return 0, err
		}
		if !utf8.Valid(data) {
			tracer().Infof("%s is not valid UTF-8", canonical)
			return 0, &FileError{Kind: NotSource, Path: canonical}
		}
		text, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
		if err != nil {
			return 0, &FileError{Kind: NotSource, Path: canonical, Err: err}
		}
		return w.intern(canonical, string(text))
	})
}

// File reads the file at path as raw bytes.
//
// The outcome is remembered separately from Resolve; both share the
// canonicalization of path. Errors are of type *FileError.
func (w *World) File(path string) (fontworld.Buffer, error) {
	canonical := w.Canonical(path)
	return w.slot(canonical).buffer.get(func() (fontworld.Buffer, error) {
		data, err := w.read(canonical)
		if err != nil {
			return fontworld.Buffer{}, err
		}
		return fontworld.NewBuffer(data), nil
	})
}

// read stats and reads a file.
func (w *World) read(path string) ([]byte, error) {
	tracer().Debugf("reading %s", path)
	info, err := w.fsys.Stat(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	if info.IsDir() {
		return nil, &FileError{Kind: IsDirectory, Path: path}
	}
	data, err := w.fsys.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	return data, nil
}

func (w *World) intern(path, text string) (SourceID, error) {
	w.srcMu.Lock()
	defer w.srcMu.Unlock()
	if len(w.sources) > math.MaxUint16 {
		return 0, &FileError{Kind: Other, Path: path, Err: ErrTooManySources}
	}
	id := SourceID(len(w.sources))
	w.sources = append(w.sources, newSource(id, path, text))
	tracer().Debugf("interned %s as source %d", path, id)
	return id, nil
}

// Source returns an interned source. It panics if id was not returned by
// this World's Resolve.
func (w *World) Source(id SourceID) *Source {
	w.srcMu.RLock()
	defer w.srcMu.RUnlock()
	return w.sources[id]
}

// Len returns the number of interned sources.
func (w *World) Len() int {
	w.srcMu.RLock()
	defer w.srcMu.RUnlock()
	return len(w.sources)
}

// Root returns the directory relative paths are resolved against.
func (w *World) Root() string {
	return w.root
}
