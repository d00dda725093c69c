package document

import (
	"fmt"
	"sort"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/immutable/vector"
)

// Array is an immutable sequence of values. It is backed by a
// persistent vector, so updates return a new Array that shares
// structure with the original.
type Array struct {
	store *vector.Vector
}

var _emptyArray = &Array{store: vector.Empty()}

// NewArray returns the empty sequence.
func NewArray() *Array {
	return _emptyArray
}

// ArrayWith builds an Array from a list of elements. Elements are
// converted with FromNative.
func ArrayWith(elems ...any) *Array {
	return ArrayFrom(elems)
}

// ArrayFrom converts a native go slice to an Array. Elements are
// converted with FromNative.
func ArrayFrom(in []any) *Array {
	if len(in) == 0 {
		return _emptyArray
	}
	vals := make([]*Value, len(in))
	for i, e := range in {
		v := FromNative(e)
		if v.IsAbsent() {
			v = Null()
		}
		vals[i] = v
	}
	return &Array{store: vector.From(vals)}
}

// At returns the value at the index, or Absent if the index is out of
// bounds.
func (arr *Array) At(index int) *Value {
	if index >= arr.store.Length() || index < 0 {
		return Absent()
	}
	return arr.store.At(index).(*Value)
}

// Contains returns whether the index is in the bounds of the array.
func (arr *Array) Contains(index int) bool {
	return index < arr.store.Length() && index >= 0
}

// Find returns the value at the index and whether the index was in the
// array.
func (arr *Array) Find(index int) (*Value, bool) {
	if !arr.Contains(index) {
		return Absent(), false
	}
	v, ok := arr.store.Find(index)
	if !ok {
		return Absent(), false
	}
	return v.(*Value), true
}

// Assoc associates the value with the index in the array. If the index
// is beyond the end the array is padded with nulls up to that index.
// The value is converted with FromNative; an absent value is stored as
// null. Assoc panics on a negative index.
func (arr *Array) Assoc(index int, value any) *Array {
	if index < 0 {
		panic(fmt.Sprintf("document: array index must be non-negative, got %d", index))
	}
	val := FromNative(value)
	if val.IsAbsent() {
		val = Null()
	}
	newStore := arr.store
	if arr.Length() <= index {
		for i := arr.Length(); i < index+1; i++ {
			newStore = newStore.Append(Null())
		}
	}
	newStore = newStore.Assoc(index, val)
	return &Array{store: newStore}
}

// Append adds a new value to the end of the array. The value is
// converted with FromNative; an absent value is stored as null.
func (arr *Array) Append(value any) *Array {
	val := FromNative(value)
	if val.IsAbsent() {
		val = Null()
	}
	return &Array{store: arr.store.Append(val)}
}

// Delete removes the element at the index, shifting subsequent
// elements left. Deleting an out of bounds index is a no-op.
func (arr *Array) Delete(index int) *Array {
	if !arr.Contains(index) {
		return arr
	}
	return &Array{store: arr.store.Delete(index)}
}

// Length returns the number of elements in the array.
func (arr *Array) Length() int {
	return arr.store.Length()
}

// Range iterates over the array's elements in index order. Range can
// take a set of functions matched by type. If the function returns a
// bool it is treated as a loop termination variable; on false the loop
// terminates.
//
//	func(int, *Value)
//	func(int, *Value) bool
//	func(*Value)
//	func(*Value) bool
func (arr *Array) Range(fn any) {
	switch f := fn.(type) {
	case func(int, *Value):
		fn = func(i int, v any) bool {
			f(i, v.(*Value))
			return true
		}
	case func(int, *Value) bool:
		fn = func(i int, v any) bool {
			return f(i, v.(*Value))
		}
	case func(*Value):
		fn = func(i int, v any) bool {
			f(v.(*Value))
			return true
		}
	case func(*Value) bool:
		fn = func(i int, v any) bool {
			return f(v.(*Value))
		}
	default:
		panic("document: invalid range function")
	}
	arr.store.Range(fn)
}

// Sort returns a new array sorted with dyn.Compare. The default
// ordering only applies to mutually comparable elements; mixed kinds
// should supply a Compare option.
func (arr *Array) Sort(options ...SortOption) *Array {
	var opts sortOpts
	opts.compare = func(v1, v2 *Value) int {
		return v1.Compare(v2)
	}
	for _, opt := range options {
		opt(&opts)
	}
	sorter := arraySorter{
		array: arr.store.AsTransient(),
		opts:  &opts,
	}
	sort.Sort(&sorter)
	return &Array{store: sorter.array.AsPersistent()}
}

type arraySorter struct {
	array *vector.TVector
	opts  *sortOpts
}

func (s *arraySorter) Len() int {
	return s.array.Length()
}

func (s *arraySorter) Less(i, j int) bool {
	return s.opts.compare(s.array.At(i).(*Value),
		s.array.At(j).(*Value)) < 0
}

func (s *arraySorter) Swap(i, j int) {
	a, b := s.array.At(i), s.array.At(j)
	s.array.Assoc(i, b)
	s.array.Assoc(j, a)
}

type sortOpts struct {
	compare func(v1, v2 *Value) int
}

// SortOption is an option to the Array.Sort function.
type SortOption func(*sortOpts)

// Compare takes a comparison function and returns a sort option. A
// compare function takes two values and returns an integer: less than
// zero when the first sorts before the last, zero when they are equal,
// and greater than zero otherwise.
func Compare(fn func(a, b *Value) int) SortOption {
	return func(opts *sortOpts) {
		opts.compare = fn
	}
}

// Equal implements equality for arrays. An array is equal to another
// array if they contain equal values in the same order. Equality
// checks are linear with respect to the number of elements.
func (arr *Array) Equal(other any) bool {
	oa, isArray := other.(*Array)
	return isArray &&
		oa.store.Length() == arr.store.Length() &&
		dyn.Equal(oa.store, arr.store)
}

// String returns a compact JSON rendering of the array.
func (arr *Array) String() string {
	return FromNative(arr).String()
}

// ToNative produces a native go slice from the array.
func (arr *Array) ToNative() []any {
	out := make([]any, 0, arr.Length())
	arr.Range(func(val *Value) {
		out = append(out, val.ToNative())
	})
	return out
}

// Transform executes the provided function against a transient version
// of the array to batch edits without intermediate allocations.
func (arr *Array) Transform(fn func(*TArray) *TArray) *Array {
	tarr := &TArray{store: arr.store.AsTransient()}
	tarr = fn(tarr)
	return &Array{store: tarr.store.AsPersistent()}
}

// TArray is a transient array used to batch edits inside Transform.
// It must not escape the Transform callback or be shared between
// goroutines.
type TArray struct {
	store *vector.TVector
}

// At returns the value at the index, or Absent if the index is out of
// bounds.
func (arr *TArray) At(index int) *Value {
	if index >= arr.store.Length() || index < 0 {
		return Absent()
	}
	return arr.store.At(index).(*Value)
}

// Assoc associates the value with the index in the array. The value is
// converted with FromNative; an absent value is stored as null.
func (arr *TArray) Assoc(index int, value any) *TArray {
	val := FromNative(value)
	if val.IsAbsent() {
		val = Null()
	}
	arr.store = arr.store.Assoc(index, val)
	return arr
}

// Append adds a new value to the end of the array. The value is
// converted with FromNative; an absent value is stored as null.
func (arr *TArray) Append(value any) *TArray {
	val := FromNative(value)
	if val.IsAbsent() {
		val = Null()
	}
	arr.store = arr.store.Append(val)
	return arr
}

// Delete removes the element at the index, shifting subsequent
// elements left. Deleting an out of bounds index is a no-op.
func (arr *TArray) Delete(index int) *TArray {
	if index >= arr.store.Length() || index < 0 {
		return arr
	}
	arr.store = arr.store.Delete(index)
	return arr
}

// Length returns the number of elements in the array.
func (arr *TArray) Length() int {
	return arr.store.Length()
}
