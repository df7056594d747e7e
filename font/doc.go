/*
Package font selects, loads and measures font faces.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "family" is a set of faces sharing one design. An example is "Helvetica".
Faces of a family may live in separate files or in one collection (*.ttc).

▪︎ A "face" is one member of a family, distinguished from its siblings by a
Variant: style, weight and stretch. An example is "Helvetica bold".

A Store is built from a list of face descriptors (FaceInfo), provided by a
Loader. Asking the store for a family and a variant selects the closest
matching face, loads the backing file (once, even if several faces share
it) and parses the face into metrics and a shaping view:

	store := font.NewStore(loader)
	if id, ok := store.Select("Go", font.NewVariant(font.StyleNormal, font.Bold, font.StretchNormal)); ok {
	    face := store.Get(id)
	    asc := face.VerticalMetric(font.Ascender)
	}

All font metrics are expressed in Em, i.e. relative to the font size.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
