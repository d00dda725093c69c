package edit

import (
	"sort"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
)

// Diff computes a script that transforms before into after.
//
// Applying the returned script to before yields a document equal to
// after. Equal inputs produce an empty script. Entries are emitted in
// a deterministic order: mapping keys sorted lexicographically, and
// sequence shrinks as deletes in descending index order so that each
// delete leaves lower indices untouched.
func Diff(before, after *document.Value) *Script {
	script := &Script{}
	diffValue(script, path.Root(), focusedValue(before), focusedValue(after))
	return script
}

func diffValue(script *Script, p path.Path, before, after *document.Value) {
	if before.Equal(after) {
		return
	}
	if after.IsAbsent() {
		script.Entries = append(script.Entries, NewEntry(ActionDelete, p))
		return
	}

	bObj, bIsObj := before.ToObject()
	aObj, aIsObj := after.ToObject()
	if bIsObj && aIsObj {
		diffObject(script, p, bObj, aObj)
		return
	}

	bArr, bIsArr := before.ToArray()
	aArr, aIsArr := after.ToArray()
	if bIsArr && aIsArr {
		diffArray(script, p, bArr, aArr)
		return
	}

	// Scalar change, kind change, or a newly created value.
	script.Entries = append(script.Entries, NewEntry(ActionAssoc, p, WithValue(after)))
}

func diffObject(script *Script, p path.Path, before, after *document.Object) {
	seen := make(map[string]bool, before.Length())
	keys := make([]string, 0, before.Length()+after.Length())
	for _, k := range before.Keys() {
		seen[k] = true
		keys = append(keys, k)
	}
	for _, k := range after.Keys() {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		diffValue(script, p.Child(key), before.At(key), after.At(key))
	}
}

func diffArray(script *Script, p path.Path, before, after *document.Array) {
	bl := before.Length()
	al := after.Length()

	common := bl
	if al < common {
		common = al
	}
	for i := 0; i < common; i++ {
		diffValue(script, p.Index(i), before.At(i), after.At(i))
	}

	for i := bl; i < al; i++ {
		script.Entries = append(script.Entries, NewEntry(ActionAssoc, p.Index(i), WithValue(after.At(i))))
	}

	// Descending order keeps the remaining indices stable as elements
	// shift down after each delete.
	for i := bl - 1; i >= al; i-- {
		script.Entries = append(script.Entries, NewEntry(ActionDelete, p.Index(i)))
	}
}

// focusedValue normalizes a nil pointer to the absent marker.
func focusedValue(v *document.Value) *document.Value {
	if v == nil {
		return document.Absent()
	}
	return v
}
