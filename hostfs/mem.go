package hostfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// Mem is an in-memory [FS]. Directories exist implicitly as parents of files.
// Mem counts every Stat and ReadFile call per (cleaned) path, which lets tests
// verify that caches above it touch the file system at most once.
//
// Mem is safe for concurrent use.
type Mem struct {
	mu     sync.Mutex
	files  map[string][]byte
	denied map[string]bool
	stats  map[string]int
	reads  map[string]int
}

// NewMem creates an empty in-memory file system.
func NewMem() *Mem {
	return &Mem{
		files:  make(map[string][]byte),
		denied: make(map[string]bool),
		stats:  make(map[string]int),
		reads:  make(map[string]int),
	}
}

// Add creates or replaces a file. Replacing a file does not reset its access counters.
func (m *Mem) Add(path string, data []byte) *Mem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
	return m
}

// Remove deletes a file. Removing a missing file is a no-op.
func (m *Mem) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, filepath.Clean(path))
}

// Deny makes every access to path fail with a permission error.
func (m *Mem) Deny(path string) *Mem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[filepath.Clean(path)] = true
	return m
}

// Stats returns how often Stat has been called for path.
func (m *Mem) Stats(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats[filepath.Clean(path)]
}

// Reads returns how often ReadFile has been called for path.
func (m *Mem) Reads(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[filepath.Clean(path)]
}

// Stat implements [FS].
func (m *Mem) Stat(path string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.stats[path]++
	return m.stat(path, "stat")
}

// ReadFile implements [FS]. The returned slice is a copy.
func (m *Mem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.reads[path]++
	info, err := m.stat(path, "open")
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: path, Err: ErrIsDirectory}
	}
	return append([]byte(nil), m.files[path]...), nil
}

// ReadDir implements [FS].
func (m *Mem) ReadDir(path string) ([]os.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	info, err := m.stat(path, "open")
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: path, Err: syscall.ENOTDIR}
	}
	seen := make(map[string]bool)
	var entries []os.DirEntry
	for name := range m.files {
		rel, ok := childOf(path, name)
		if !ok {
			continue
		}
		first, _, nested := strings.Cut(rel, string(filepath.Separator))
		if seen[first] {
			continue
		}
		seen[first] = true
		entries = append(entries, fs.FileInfoToDirEntry(memInfo{
			name: first,
			size: int64(len(m.files[name])),
			dir:  nested,
		}))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// stat must be called with m.mu held.
func (m *Mem) stat(path, op string) (os.FileInfo, error) {
	if m.denied[path] {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrPermission}
	}
	if data, ok := m.files[path]; ok {
		return memInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	for name := range m.files {
		if _, ok := childOf(path, name); ok {
			return memInfo{name: filepath.Base(path), dir: true}, nil
		}
	}
	return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
}

// childOf returns name relative to dir, if name lies below dir.
func childOf(dir, name string) (string, bool) {
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	return name[len(prefix):], true
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }
