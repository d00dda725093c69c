// Package document provides an immutable value model for nested
// YAML/JSON-style data.
//
// A document is a tree of [Value] nodes. Each Value holds one of:
// a mapping ([Object]), a sequence ([Array]), a string, a bool, an
// int64, a uint64, a float64, null, or the absent marker. Objects and
// Arrays are backed by persistent data structures, so every update
// returns a new container that shares unchanged branches with the
// original.
//
// # Absent versus null
//
// Null is a value that exists in the document and holds nothing.
// Absent marks a location that does not exist at all. Lookups on
// missing keys and out of bounds indices return [Absent], never nil,
// so callers can chain accessors without nil checks. Absent values are
// never stored: associating an absent value removes the entry instead.
//
// # Path operations
//
// [Resolve], [Assoc], and [Delete] apply a [path.Path] to a document.
// Assoc creates missing intermediate containers on the way down, a
// mapping for a key step and a sequence for an index step, and rebuilds
// only the spine of the tree on the way up. Branches off the path are
// shared with the input document.
//
// # Codecs
//
// [Decode], [Encode], and [LoadFile] convert documents to and from
// YAML and JSON. Integers survive the round trip as int64 (or uint64
// beyond the int64 range); floats stay float64.
package document
