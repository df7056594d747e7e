package hostfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
	}{
		{nil, KindOther},
		{&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, KindNotFound},
		{fmt.Errorf("wrapped: %w", fs.ErrPermission), KindPermission},
		{&fs.PathError{Op: "read", Path: "x", Err: ErrIsDirectory}, KindIsDirectory},
		{errors.New("disk on fire"), KindOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, Classify(tt.err), "classify %v", tt.err)
	}
}

func TestMemFiles(t *testing.T) {
	m := NewMem().Add("/a/b/c.txt", []byte("hello")).Add("/a/d.txt", []byte("!"))

	data, err := m.ReadFile("/a/b/../b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, 1, m.Reads("/a/b/c.txt"))

	info, err := m.Stat("/a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = m.ReadFile("/a")
	assert.Equal(t, KindIsDirectory, Classify(err))

	_, err = m.Stat("/nope")
	assert.Equal(t, KindNotFound, Classify(err))
	assert.Equal(t, 1, m.Stats("/nope"))

	m.Deny("/a/d.txt")
	_, err = m.ReadFile("/a/d.txt")
	assert.Equal(t, KindPermission, Classify(err))
}

func TestMemReadDir(t *testing.T) {
	m := NewMem().
		Add("/fonts/z.ttf", []byte{1}).
		Add("/fonts/a.otf", []byte{2}).
		Add("/fonts/sub/b.ttc", []byte{3})

	entries, err := m.ReadDir("/fonts")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.otf", "sub", "z.ttf"}, names)
	assert.True(t, entries[1].IsDir())

	_, err = m.ReadDir("/fonts/a.otf")
	assert.Error(t, err)
}

func TestRealIsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := NewReal()
	data, err := r.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	_, err = r.Stat(filepath.Join(dir, "missing"))
	assert.Equal(t, KindNotFound, Classify(err))

	info, err := r.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
