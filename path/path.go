// Package path provides parsing and construction of paths into nested
// documents.
//
// A path is a sequence of segments, each addressing either a mapping key
// or a sequence index. The canonical text form uses dots between keys and
// brackets around indices:
//
//	one
//	nest.two
//	items[3].name
//
// Keys containing dots, brackets, quotes, or other characters outside
// [A-Za-z0-9_-] use the bracketed quoted form:
//
//	["key.with.dots"].value
//
// The empty expression denotes the root path, which addresses the whole
// document.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a single step in a Path: either a mapping key or a
// sequence index.
type Segment struct {
	key   string
	index int
	isIdx bool
}

// KeySegment returns a Segment that addresses a mapping key.
func KeySegment(key string) Segment {
	return Segment{key: key}
}

// IndexSegment returns a Segment that addresses a sequence index.
// It panics if index is negative.
func IndexSegment(index int) Segment {
	if index < 0 {
		panic(fmt.Sprintf("path: index must be non-negative, got %d", index))
	}
	return Segment{index: index, isIdx: true}
}

// IsKey reports whether the segment addresses a mapping key.
func (s Segment) IsKey() bool {
	return !s.isIdx
}

// IsIndex reports whether the segment addresses a sequence index.
func (s Segment) IsIndex() bool {
	return s.isIdx
}

// Key returns the mapping key this segment addresses.
// It returns "" for index segments.
func (s Segment) Key() string {
	if s.isIdx {
		return ""
	}
	return s.key
}

// Index returns the sequence index this segment addresses.
// It returns 0 for key segments; check IsIndex first.
func (s Segment) Index() int {
	if !s.isIdx {
		return 0
	}
	return s.index
}

// String returns the segment in canonical text form, as it would appear
// at the start of a path expression.
func (s Segment) String() string {
	if s.isIdx {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	if isSafeKey(s.key) {
		return s.key
	}
	return "[" + strconv.Quote(s.key) + "]"
}

// Path addresses a location in a nested document. The zero value is the
// root path. Paths are immutable: methods that extend or shorten a path
// return a new Path and leave the receiver unchanged.
type Path struct {
	segs []Segment
}

// Root returns the empty path, which addresses the whole document.
func Root() Path {
	return Path{}
}

// New builds a Path from the given elements. Each element must be a
// string (a mapping key), an int or int64 (a sequence index), or a
// Segment. It panics on any other element type or on a negative index.
//
//	path.New("nest", "two")
//	path.New("items", 3, "name")
func New(elems ...any) Path {
	if len(elems) == 0 {
		return Path{}
	}
	segs := make([]Segment, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			segs = append(segs, KeySegment(v))
		case int:
			segs = append(segs, IndexSegment(v))
		case int64:
			segs = append(segs, IndexSegment(int(v)))
		case Segment:
			segs = append(segs, v)
		default:
			panic(fmt.Sprintf("path: cannot build segment from %T", e))
		}
	}
	return Path{segs: segs}
}

// IsRoot reports whether the path is empty.
func (p Path) IsRoot() bool {
	return len(p.segs) == 0
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.segs)
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Segment {
	if len(p.segs) == 0 {
		return nil
	}
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// At returns the segment at position i.
// It panics if i is out of range.
func (p Path) At(i int) Segment {
	return p.segs[i]
}

// Child returns a new path extended with a mapping key segment.
func (p Path) Child(key string) Path {
	return p.extend(KeySegment(key))
}

// Index returns a new path extended with a sequence index segment.
// It panics if i is negative.
func (p Path) Index(i int) Path {
	return p.extend(IndexSegment(i))
}

// Join returns a new path with all of other's segments appended.
func (p Path) Join(other Path) Path {
	if other.IsRoot() {
		return p
	}
	if p.IsRoot() {
		return other
	}
	segs := make([]Segment, 0, len(p.segs)+len(other.segs))
	segs = append(segs, p.segs...)
	segs = append(segs, other.segs...)
	return Path{segs: segs}
}

// Parent returns the path with the final segment removed.
// The parent of the root path is the root path.
func (p Path) Parent() Path {
	if len(p.segs) == 0 {
		return Path{}
	}
	segs := make([]Segment, len(p.segs)-1)
	copy(segs, p.segs[:len(p.segs)-1])
	return Path{segs: segs}
}

// Base returns the final segment of the path. The second return value
// is false when the path is the root.
func (p Path) Base() (Segment, bool) {
	if len(p.segs) == 0 {
		return Segment{}, false
	}
	return p.segs[len(p.segs)-1], true
}

// Equal reports whether two paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p.segs) != len(other.segs) {
		return false
	}
	for i, s := range p.segs {
		if s != other.segs[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the path begins with all of prefix's segments.
// Every path has the root path as a prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segs) > len(p.segs) {
		return false
	}
	for i, s := range prefix.segs {
		if s != p.segs[i] {
			return false
		}
	}
	return true
}

// String returns the path in canonical text form. The root path renders
// as the empty string. The result parses back to an equal path.
func (p Path) String() string {
	if len(p.segs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range p.segs {
		switch {
		case s.isIdx:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		case isSafeKey(s.key):
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.key)
		default:
			b.WriteByte('[')
			b.WriteString(strconv.Quote(s.key))
			b.WriteByte(']')
		}
	}
	return b.String()
}

func (p Path) extend(s Segment) Path {
	segs := make([]Segment, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return Path{segs: append(segs, s)}
}

// isSafeKey reports whether a key renders unambiguously in bare dotted
// form. Unsafe keys use the bracketed quoted form instead.
func isSafeKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isIdentChar(key[i]) {
			return false
		}
	}
	return true
}

func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-'
}
