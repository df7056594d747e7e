/*
Package fontworld is the resource-resolution layer of a typesetting engine.

It turns opaque identifiers into loaded, parsed and cached in-memory artifacts:

▪︎ Sub-package `font` holds the font store. Given a family name and a desired
variant (style, weight, stretch), the store selects the best matching face, loads
its backing bytes (shared between faces of one collection file) and parses it
into a metrics and shaping view.

▪︎ Sub-package `world` holds the resource world cache. Given a file path, it
canonicalizes the path and memoizes both "interpret as text source" and "read as
raw bytes", including failures, so that no path is read or decoded twice.

▪︎ Sub-packages `otquery`, `fontload` and `hostfs` provide the table views, the
file-system backed font loader and the host file-system seam.

Both caches follow one pattern: canonical key → lazily computed, memoized slot →
shared immutable payload. The payload for raw bytes is a Buffer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontworld

import "bytes"

// Buffer is an immutable byte buffer which may be shared between several owners,
// e.g. all faces of a font collection file, or all readers of one resource file.
//
// Buffer is a small value type and is cheap to copy; copies share the underlying
// storage. The bytes returned by Bytes must not be modified: parsed font views
// keep referencing them for the lifetime of the process.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data into a Buffer. Ownership of data passes to the buffer;
// clients must not modify data afterwards.
func NewBuffer(data []byte) Buffer {
	return Buffer{data: data}
}

// Bytes returns the buffer's content. The result must be treated as read-only.
func (b Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes in the buffer.
func (b Buffer) Len() int {
	return len(b.data)
}

// IsEmpty is true for buffers without content.
func (b Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Reader returns a fresh reader over the buffer's content.
// The reader satisfies the resource interface of go-text/typesetting's
// font loaders.
func (b Buffer) Reader() *bytes.Reader {
	return bytes.NewReader(b.data)
}

// Shares reports whether b and other are views of the same underlying storage.
// Two empty buffers are never considered shared.
func (b Buffer) Shares(other Buffer) bool {
	if len(b.data) == 0 || len(other.data) == 0 || len(b.data) != len(other.data) {
		return false
	}
	return &b.data[0] == &other.data[0]
}
