/*
Package otquery decodes typed views from the raw bytes of OpenType font tables.

Table bytes are obtained from a Tables source, usually a loader of
go-text/typesetting (github.com/go-text/typesetting/font/opentype), which knows
how to locate tables inside single fonts and font collections. Package otquery
does not interpret the font beyond the handful of tables needed to describe
a face and derive its vertical metrics:

▪︎ head, hhea, maxp, OS/2, post for metrics,

▪︎ name for family names.

Every query returns an extra boolean which is false if the table is missing
or too short to be decoded; queries never panic on malformed input.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// Tables is a source of raw table data for one font.
// *opentype.Loader satisfies Tables.
type Tables interface {
	RawTable(tag opentype.Tag) ([]byte, error)
}

// Table tags known to otquery.
var (
	TagHead = opentype.MustNewTag("head")
	TagHHea = opentype.MustNewTag("hhea")
	TagMaxP = opentype.MustNewTag("maxp")
	TagOS2  = opentype.MustNewTag("OS/2")
	TagPost = opentype.MustNewTag("post")
	TagName = opentype.MustNewTag("name")
)

// rawTable returns the bytes of a table, or nil if src is nil or the table is missing.
func rawTable(src Tables, tag opentype.Tag) []byte {
	if src == nil {
		return nil
	}
	b, err := src.RawTable(tag)
	if err != nil {
		tracer().Debugf("font has no table %s: %v", tag, err)
		return nil
	}
	return b
}
