package document

import (
	"sort"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/immutable/hashmap"
)

// Object is an immutable mapping from string keys to values. It is
// backed by a persistent hash map, so updates return a new Object that
// shares structure with the original.
type Object struct {
	store *hashmap.Map
}

var _emptyObject = &Object{store: hashmap.Empty()}

// NewObject returns the empty mapping.
func NewObject() *Object {
	return _emptyObject
}

// ObjectWith builds an Object from a list of Pairs. This provides a
// declarative mechanism for producing a mapping.
//
//	document.ObjectWith(
//	    document.NewPair("one", 1),
//	    document.NewPair("nest", document.ObjectWith(
//	        document.NewPair("two", 2))))
func ObjectWith(pairs ...Pair) *Object {
	return NewObject().Transform(func(t *TObject) *TObject {
		for _, pair := range pairs {
			t = t.Assoc(pair.Key(), pair.Value())
		}
		return t
	})
}

// ObjectFrom converts a native go map to an Object. Values are
// converted with FromNative.
func ObjectFrom(in map[string]any) *Object {
	return NewObject().Transform(func(t *TObject) *TObject {
		for k, v := range in {
			t = t.Assoc(k, v)
		}
		return t
	})
}

// Pair is a key and value used to build Objects declaratively.
type Pair struct {
	key   string
	value *Value
}

// NewPair returns a Pair of the key and value. The value is converted
// with FromNative.
func NewPair(key string, value any) Pair {
	return Pair{key: key, value: FromNative(value)}
}

// Key returns the pair's key.
func (p Pair) Key() string {
	return p.key
}

// Value returns the pair's value.
func (p Pair) Value() *Value {
	return p.value
}

// At returns the value at the key, or Absent if the key does not exist.
func (obj *Object) At(key string) *Value {
	out, ok := obj.store.Find(key)
	if !ok {
		return Absent()
	}
	return out.(*Value)
}

// Find returns the value at the key and whether the key was in the
// object.
func (obj *Object) Find(key string) (*Value, bool) {
	out, ok := obj.store.Find(key)
	if !ok {
		return Absent(), false
	}
	return out.(*Value), true
}

// Contains returns true if the key exists in the object.
func (obj *Object) Contains(key string) bool {
	return obj.store.Contains(key)
}

// Assoc associates a new value with the key. The value is converted
// with FromNative. Associating an absent value removes the key.
func (obj *Object) Assoc(key string, value any) *Object {
	val := FromNative(value)
	if val.IsAbsent() {
		return obj.Delete(key)
	}
	newStore := obj.store.Assoc(key, val)
	if newStore == obj.store {
		return obj
	}
	return &Object{store: newStore}
}

// Delete removes a key from the object.
func (obj *Object) Delete(key string) *Object {
	newStore := obj.store.Delete(key)
	if newStore == obj.store {
		return obj
	}
	return &Object{store: newStore}
}

// Length returns the number of entries in the object.
func (obj *Object) Length() int {
	return obj.store.Length()
}

// Keys returns the object's keys in sorted order.
func (obj *Object) Keys() []string {
	keys := make([]string, 0, obj.Length())
	obj.Range(func(key string) {
		keys = append(keys, key)
	})
	sort.Strings(keys)
	return keys
}

// Range iterates over the object's entries in unspecified order. Range
// can take a set of functions matched by type. If the function returns
// a bool it is treated as a loop termination variable; on false the
// loop terminates.
//
//	func(string, *Value)
//	func(string, *Value) bool
//	func(string)
//	func(string) bool
//	func(*Value)
//	func(*Value) bool
func (obj *Object) Range(fn any) {
	switch f := fn.(type) {
	case func(string, *Value):
		fn = func(e hashmap.Entry) bool {
			f(e.Key().(string), e.Value().(*Value))
			return true
		}
	case func(string, *Value) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Key().(string), e.Value().(*Value))
		}
	case func(string):
		fn = func(e hashmap.Entry) bool {
			f(e.Key().(string))
			return true
		}
	case func(string) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Key().(string))
		}
	case func(*Value):
		fn = func(e hashmap.Entry) bool {
			f(e.Value().(*Value))
			return true
		}
	case func(*Value) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Value().(*Value))
		}
	default:
		panic("document: invalid range function")
	}
	obj.store.Range(fn)
}

// Merge merges another object into this one. The result contains this
// object's keys with any counterparts from other merged in, plus any
// keys only present in other. Merge is accretive and will not remove
// keys.
func (obj *Object) Merge(other *Object) *Object {
	if other == nil || other.Length() == 0 {
		return obj
	}
	if obj.Length() == 0 {
		return other
	}
	return obj.Transform(func(t *TObject) *TObject {
		obj.Range(func(key string, val *Value) {
			if incoming, ok := other.Find(key); ok {
				t = t.Assoc(key, val.Merge(incoming))
			}
		})
		other.Range(func(key string, val *Value) {
			if !obj.Contains(key) {
				t = t.Assoc(key, val)
			}
		})
		return t
	})
}

// Equal implements equality for objects. An object is equal to another
// object if all their keys contain equal values. Equality checks are
// linear with respect to the number of keys.
func (obj *Object) Equal(other any) bool {
	oo, isObject := other.(*Object)
	return isObject &&
		oo.store.Length() == obj.store.Length() &&
		dyn.Equal(oo.store, obj.store)
}

// String returns a compact JSON rendering of the object.
func (obj *Object) String() string {
	return FromNative(obj).String()
}

// ToNative produces a native go map from the object.
func (obj *Object) ToNative() map[string]any {
	out := make(map[string]any, obj.Length())
	obj.Range(func(key string, val *Value) {
		out[key] = val.ToNative()
	})
	return out
}

// Transform executes the provided function against a transient version
// of the object to batch edits without intermediate allocations.
func (obj *Object) Transform(fn func(*TObject) *TObject) *Object {
	newStore := obj.store.Transform(
		func(store *hashmap.TMap) *hashmap.TMap {
			return fn(&TObject{store: store}).store
		})
	if newStore == obj.store {
		return obj
	}
	return &Object{store: newStore}
}

// TObject is a transient object used to batch edits inside Transform.
// It must not escape the Transform callback or be shared between
// goroutines.
type TObject struct {
	store *hashmap.TMap
}

// Contains returns true if the key exists in the object.
func (obj *TObject) Contains(key string) bool {
	return obj.store.Contains(key)
}

// Assoc associates a new value with the key. The value is converted
// with FromNative. Associating an absent value removes the key.
func (obj *TObject) Assoc(key string, value any) *TObject {
	val := FromNative(value)
	if val.IsAbsent() {
		return obj.Delete(key)
	}
	obj.store = obj.store.Assoc(key, val)
	return obj
}

// Delete removes a key from the object.
func (obj *TObject) Delete(key string) *TObject {
	obj.store.Delete(key)
	return obj
}
