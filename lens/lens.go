// Package lens provides composable bidirectional accessors over
// immutable documents.
//
// A lens pairs a getter with a setter for one location in a document.
// Lenses are stateless and hold no reference to any document; the same
// lens can be applied to any number of documents, concurrently, in any
// order.
//
// # Construction
//
// The canonical constructor focuses the location a path addresses:
//
//	nestTwo := lens.FromPath(path.MustParse("nest.two"))
//
// Lenses compose, focusing through each in turn:
//
//	nestTwo := lens.Compose(lens.Key("nest"), lens.Key("two"))
//
// Both forms address the same location and behave identically.
// Arbitrary accessor pairs are supported through FromAccessors; keeping
// the pair coherent is then the caller's responsibility.
//
// # Operations
//
// View returns the focused value, Set replaces it, and Over rewrites it
// through a function:
//
//	doc, _, _ := document.LoadFile("config.yaml")
//	v := nestTwo.View(doc)
//	doc2 := nestTwo.Set(22, doc)
//	doc3 := nestTwo.Over(func(v *document.Value) *document.Value {
//	    return document.Int(-v.AsInt())
//	}, doc)
//
// All operations leave the input document untouched and share every
// branch not on the focused path with the result.
//
// # Absent
//
// Viewing a location that does not exist returns document.Absent, never
// an error. Setting through missing intermediate locations creates
// them: mappings for key steps, sequences for index steps. Setting
// document.Absent as the new value removes the focused entry from its
// container. Over invokes its function even when the focus is absent,
// so Over(fn, doc) is always Set(fn(View(doc)), doc); construct the
// lens with WithSkipAbsent to leave documents without the focus
// unchanged instead.
package lens

import (
	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
)

// GetterFunc extracts the focused value from a document. It reports a
// missing focus by returning document.Absent.
type GetterFunc func(doc *document.Value) *document.Value

// SetterFunc returns a new document with the focused value replaced.
// It must not modify the input document.
type SetterFunc func(doc *document.Value, value *document.Value) *document.Value

// UpdateFunc rewrites a focused value for Over.
type UpdateFunc func(value *document.Value) *document.Value

// Lens is a bidirectional accessor for one location in a document.
// The zero value is the identity lens, which focuses the whole
// document.
type Lens struct {
	get        GetterFunc
	set        SetterFunc
	skipAbsent bool
}

// FromPath returns the lens focusing the location the path addresses.
//
// The getter resolves the path from the document root; a missing key,
// an out of bounds index, or a step through a value of the wrong kind
// all yield document.Absent. The setter rebuilds the path from the
// bottom up, creating missing intermediate containers and replacing
// intermediates of the wrong kind, so the new value always ends up at
// the focus.
func FromPath(p path.Path, opts ...Option) Lens {
	cfg := applyOptions(opts)
	return Lens{
		get: func(doc *document.Value) *document.Value {
			v, _ := document.Resolve(doc, p)
			return v
		},
		set: func(doc *document.Value, value *document.Value) *document.Value {
			return document.Assoc(doc, p, value)
		},
		skipAbsent: cfg.skipAbsent,
	}
}

// FromAccessors returns a lens over an arbitrary getter and setter
// pair. No coherence between the two is checked; the lens laws hold
// only if the pair upholds them.
func FromAccessors(get GetterFunc, set SetterFunc, opts ...Option) Lens {
	cfg := applyOptions(opts)
	return Lens{get: get, set: set, skipAbsent: cfg.skipAbsent}
}

// Identity returns the lens focusing the whole document.
func Identity() Lens {
	return Lens{}
}

// Key returns the lens focusing the entry at the key of the document's
// top level mapping.
func Key(key string, opts ...Option) Lens {
	return FromPath(path.New(key), opts...)
}

// Index returns the lens focusing the element at the index of the
// document's top level sequence. Index panics if the index is
// negative.
func Index(index int, opts ...Option) Lens {
	return FromPath(path.New(index), opts...)
}

// Compose chains lenses outermost first: the first lens focuses into
// the document, the second into that focus, and so on. Composition is
// associative. Compose of nothing is the identity lens.
//
// The innermost lens decides how Over treats an absent focus.
func Compose(lenses ...Lens) Lens {
	switch len(lenses) {
	case 0:
		return Identity()
	case 1:
		return lenses[0]
	}
	out := lenses[0]
	for _, inner := range lenses[1:] {
		out = out.Then(inner)
	}
	return out
}

// Then composes the lens with one focusing inside its focus.
func (l Lens) Then(inner Lens) Lens {
	outer := l
	return Lens{
		get: func(doc *document.Value) *document.Value {
			return inner.View(outer.View(doc))
		},
		set: func(doc *document.Value, value *document.Value) *document.Value {
			focus := outer.View(doc)
			return outer.Set(inner.Set(value, focus), doc)
		},
		skipAbsent: inner.skipAbsent,
	}
}

// View returns the focused value. A missing focus is document.Absent,
// never an error; View is total.
func (l Lens) View(doc *document.Value) *document.Value {
	if l.get == nil {
		return focused(doc)
	}
	return focused(l.get(doc))
}

// Set returns a new document carrying the value at the focus. The
// value is converted with document.FromNative. The input document is
// untouched and every branch off the focused path is shared with the
// result.
//
// Setting document.Absent removes the focused entry from its
// container; at the identity lens this yields the null document.
func (l Lens) Set(value any, doc *document.Value) *document.Value {
	val := document.FromNative(value)
	if l.set == nil {
		if val.IsAbsent() {
			return document.Null()
		}
		return val
	}
	return l.set(doc, val)
}

// Over returns a new document with the focused value rewritten by fn.
// Over is Set(fn(View(doc)), doc): fn sees document.Absent when the
// focus is missing, and returning document.Absent removes the focus.
// A lens built with WithSkipAbsent returns the document unchanged
// instead of invoking fn on an absent focus.
func (l Lens) Over(fn UpdateFunc, doc *document.Value) *document.Value {
	cur := l.View(doc)
	if cur.IsAbsent() && l.skipAbsent {
		return doc
	}
	return l.Set(focused(fn(cur)), doc)
}

// focused normalizes nil to the absent marker so accessors never leak
// nil values.
func focused(v *document.Value) *document.Value {
	if v == nil {
		return document.Absent()
	}
	return v
}
