// Package formpath addresses values inside a form-data tree by structural path.
//
// A form-data tree is a map[string]any whose values are scalars, nested
// map[string]any values or []any sequences. A Path is an ordered list of
// segments, each either a string key or an integer index. At API boundaries
// paths are written in dot/bracket notation:
//
//	user.addresses[0].city
//
// Parse turns that notation into a Path and Path.String turns it back into the
// canonical form, which is what the rest of the module uses as a map key.
//
// # Reading and writing
//
// Get walks a tree and reports whether the value exists. Set never mutates the
// tree it receives: it copies every container on the way down to the written
// leaf and shares everything else, so callers holding the old tree never
// observe a change.
//
//	next, err := formpath.Set(data, formpath.MustParse("user.tags[1]"), "go")
//
// Missing intermediate containers are created on write (a map for a key
// segment, a slice for an index segment). Writing through an existing value of
// the wrong shape, such as indexing into a string, is a programming error and
// returns ErrShapeMismatch instead of silently replacing the value.
//
// Set accepts every container Get reads. Typed slices, arrays and string-keyed
// maps on the written spine are replaced by their []any or map[string]any
// equivalent. Sequences may be padded with nil up to MaxIndex; larger indexes
// return ErrIndexOutOfRange.
package formpath
