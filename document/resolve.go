package document

import (
	"github.com/erraggy/lenstools/path"
)

// Resolve walks the path from the document root and returns the value
// it addresses. The second return value reports whether the full path
// existed; when it is false the returned value is Absent. Resolve never
// fails: missing keys, out of bounds indices, and steps through values
// of the wrong kind all resolve to Absent.
func Resolve(doc *Value, p path.Path) (*Value, bool) {
	if doc == nil {
		return Absent(), false
	}
	cur := doc
	for _, seg := range p.Segments() {
		if seg.IsKey() {
			obj, ok := cur.ToObject()
			if !ok {
				return Absent(), false
			}
			v, found := obj.Find(seg.Key())
			if !found {
				return Absent(), false
			}
			cur = v
			continue
		}
		arr, ok := cur.ToArray()
		if !ok {
			return Absent(), false
		}
		v, found := arr.Find(seg.Index())
		if !found {
			return Absent(), false
		}
		cur = v
	}
	return cur, true
}

// Assoc returns a new document with the value placed at the path.
// The value is converted with FromNative.
//
// Missing intermediate containers are created on the way down: a
// mapping for a key step, a sequence for an index step. An existing
// intermediate of the wrong kind for its step is replaced by a fresh
// container of the right kind. Index steps beyond the end of a
// sequence pad it with nulls. Only the containers along the path are
// rebuilt; all other branches are shared with the input document.
//
// Assoc with an absent value removes the target instead, exactly as
// Delete does. Assoc at the root path returns the value itself,
// replacing the whole document.
func Assoc(doc *Value, p path.Path, value any) *Value {
	val := FromNative(value)
	if val.IsAbsent() {
		return Delete(doc, p)
	}
	if p.IsRoot() {
		return val
	}
	if doc == nil {
		doc = Null()
	}

	segs := p.Segments()

	// Walk down recording the container that will host each step,
	// replacing anything that is missing or of the wrong kind.
	parents := make([]*Value, len(segs))
	cur := doc
	for i, seg := range segs {
		var container *Value
		if seg.IsKey() {
			if cur.IsObject() {
				container = cur
			} else {
				container = FromNative(NewObject())
			}
		} else {
			if cur.IsArray() {
				container = cur
			} else {
				container = FromNative(NewArray())
			}
		}
		parents[i] = container
		if i < len(segs)-1 {
			cur = childOf(container, seg)
		}
	}

	// Rebuild bottom-up so each level reuses the persistent
	// structure of its parent.
	out := val
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if seg.IsKey() {
			out = FromNative(parents[i].AsObject().Assoc(seg.Key(), out))
		} else {
			out = FromNative(parents[i].AsArray().Assoc(seg.Index(), out))
		}
	}
	return out
}

// Delete returns a new document with the value at the path removed.
// Deleting a path that does not resolve returns the document unchanged.
// Deleting a sequence element shifts subsequent elements left. Deleting
// the root path yields the null document.
func Delete(doc *Value, p path.Path) *Value {
	if p.IsRoot() {
		return Null()
	}
	if _, found := Resolve(doc, p); !found {
		return doc
	}

	parentPath := p.Parent()
	last, _ := p.Base()
	parentVal, _ := Resolve(doc, parentPath)

	var newParent *Value
	if last.IsKey() {
		newParent = FromNative(parentVal.AsObject().Delete(last.Key()))
	} else {
		newParent = FromNative(parentVal.AsArray().Delete(last.Index()))
	}
	return Assoc(doc, parentPath, newParent)
}

// childOf returns the container's child addressed by the segment, or
// Absent when it does not exist. The container is already normalized
// to the segment's kind.
func childOf(container *Value, seg path.Segment) *Value {
	if seg.IsKey() {
		return container.AsObject().At(seg.Key())
	}
	return container.AsArray().At(seg.Index())
}
