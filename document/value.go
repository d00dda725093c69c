package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"jsouthworth.net/go/dyn"
)

// Kind identifies the type of data a Value holds.
type Kind int

// The kinds of values a document may contain.
const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindMapping
	KindSequence
)

// String returns the kind's name as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// absent is the internal marker for a location that does not exist.
type absent struct{}

// Value is a single node in a document. Values are immutable. The data
// held is one of *Object, *Array, string, bool, int64, uint64, float64,
// nil (null), or the absent marker.
type Value struct {
	data any
}

var (
	_absent = &Value{data: absent{}}
	_null   = &Value{}
)

// Absent returns the marker for a location that does not exist.
func Absent() *Value {
	return _absent
}

// Null returns the null value.
func Null() *Value {
	return _null
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{data: b}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{data: s}
}

// Int returns an integer value.
func Int(i int64) *Value {
	return &Value{data: i}
}

// Uint returns an unsigned integer value. Values that fit in int64 are
// stored as int64 so that equal numbers compare equal regardless of how
// they were constructed.
func Uint(u uint64) *Value {
	if u <= math.MaxInt64 {
		return &Value{data: int64(u)}
	}
	return &Value{data: u}
}

// Float returns a floating point value.
func Float(f float64) *Value {
	return &Value{data: f}
}

// FromNative turns a native go value into a document Value. Supported
// inputs are nil, *Value, *Object, *Array, bool, string, all integer
// and float types, json.Number, map[string]any, map[any]any (keys are
// rendered with fmt.Sprint), and []any. FromNative panics on any other
// type.
func FromNative(in any) *Value {
	if in == nil {
		return Null()
	}
	switch d := in.(type) {
	case *Value:
		return d
	case *Object:
		return &Value{data: d}
	case *Array:
		return &Value{data: d}
	case absent:
		return Absent()
	case bool:
		return Bool(d)
	case string:
		return String(d)
	case int:
		return Int(int64(d))
	case int8:
		return Int(int64(d))
	case int16:
		return Int(int64(d))
	case int32:
		return Int(int64(d))
	case int64:
		return Int(d)
	case uint:
		return Uint(uint64(d))
	case uint8:
		return Uint(uint64(d))
	case uint16:
		return Uint(uint64(d))
	case uint32:
		return Uint(uint64(d))
	case uint64:
		return Uint(d)
	case float32:
		return Float(float64(d))
	case float64:
		return Float(d)
	case json.Number:
		return numberValue(d)
	case map[string]any:
		return &Value{data: ObjectFrom(d)}
	case map[any]any:
		out := make(map[string]any, len(d))
		for k, v := range d {
			out[fmt.Sprint(k)] = v
		}
		return &Value{data: ObjectFrom(out)}
	case []any:
		return &Value{data: ArrayFrom(d)}
	default:
		panic(fmt.Sprintf("document: cannot create value from %T", in))
	}
}

// numberValue keeps integers integral. Decoders hand numbers through
// here so 1 and 1.0 stay distinguishable.
func numberValue(n json.Number) *Value {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Uint(u)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("document: cannot create value from number %q", s))
	}
	return Float(f)
}

// Kind returns the kind of data the value holds.
func (val *Value) Kind() Kind {
	if val == nil {
		return KindAbsent
	}
	switch val.data.(type) {
	case nil:
		return KindNull
	case absent:
		return KindAbsent
	case bool:
		return KindBool
	case int64:
		return KindInt
	case uint64:
		return KindUint
	case float64:
		return KindFloat
	case string:
		return KindString
	case *Object:
		return KindMapping
	case *Array:
		return KindSequence
	default:
		return KindAbsent
	}
}

// Data returns the underlying data of the value.
func (val *Value) Data() any {
	return val.data
}

// IsAbsent reports whether the value marks a location that does not
// exist. A nil *Value is treated as absent.
func (val *Value) IsAbsent() bool {
	if val == nil {
		return true
	}
	_, isAbsent := val.data.(absent)
	return isAbsent
}

// IsNull reports whether the value is null.
func (val *Value) IsNull() bool {
	return val != nil && val.data == nil
}

// IsObject reports whether the value holds a mapping.
func (val *Value) IsObject() bool {
	_, isObject := val.data.(*Object)
	return isObject
}

// AsObject returns the value's mapping, or nil if it holds another kind.
func (val *Value) AsObject() *Object {
	obj, _ := val.data.(*Object)
	return obj
}

// ToObject returns the value's mapping and whether the value held one.
func (val *Value) ToObject() (*Object, bool) {
	obj, ok := val.data.(*Object)
	return obj, ok
}

// IsArray reports whether the value holds a sequence.
func (val *Value) IsArray() bool {
	_, isArray := val.data.(*Array)
	return isArray
}

// AsArray returns the value's sequence, or nil if it holds another kind.
func (val *Value) AsArray() *Array {
	arr, _ := val.data.(*Array)
	return arr
}

// ToArray returns the value's sequence and whether the value held one.
func (val *Value) ToArray() (*Array, bool) {
	arr, ok := val.data.(*Array)
	return arr, ok
}

// IsString reports whether the value holds a string.
func (val *Value) IsString() bool {
	_, isString := val.data.(string)
	return isString
}

// AsString returns the value's string, or "" if it holds another kind.
func (val *Value) AsString() string {
	s, _ := val.data.(string)
	return s
}

// ToString returns the value's string and whether the value held one.
func (val *Value) ToString() (string, bool) {
	s, ok := val.data.(string)
	return s, ok
}

// IsBool reports whether the value holds a bool.
func (val *Value) IsBool() bool {
	_, isBool := val.data.(bool)
	return isBool
}

// AsBool returns the value's bool, or false if it holds another kind.
func (val *Value) AsBool() bool {
	b, _ := val.data.(bool)
	return b
}

// ToBool returns the value's bool and whether the value held one.
func (val *Value) ToBool() (bool, bool) {
	b, ok := val.data.(bool)
	return b, ok
}

// IsInt reports whether the value holds an int64.
func (val *Value) IsInt() bool {
	_, isInt := val.data.(int64)
	return isInt
}

// AsInt returns the value's int64, or 0 if it holds another kind.
func (val *Value) AsInt() int64 {
	i, _ := val.data.(int64)
	return i
}

// ToInt returns the value's int64 and whether the value held one.
func (val *Value) ToInt() (int64, bool) {
	i, ok := val.data.(int64)
	return i, ok
}

// IsUint reports whether the value holds a uint64. Only values beyond
// the int64 range are stored as uint64.
func (val *Value) IsUint() bool {
	_, isUint := val.data.(uint64)
	return isUint
}

// AsUint returns the value's uint64, or 0 if it holds another kind.
func (val *Value) AsUint() uint64 {
	u, _ := val.data.(uint64)
	return u
}

// ToUint returns the value's uint64 and whether the value held one.
func (val *Value) ToUint() (uint64, bool) {
	u, ok := val.data.(uint64)
	return u, ok
}

// IsFloat reports whether the value holds a float64.
func (val *Value) IsFloat() bool {
	_, isFloat := val.data.(float64)
	return isFloat
}

// AsFloat returns the value's float64, or 0 if it holds another kind.
func (val *Value) AsFloat() float64 {
	f, _ := val.data.(float64)
	return f
}

// ToFloat returns the value's float64 and whether the value held one.
func (val *Value) ToFloat() (float64, bool) {
	f, ok := val.data.(float64)
	return f, ok
}

// IsNumber reports whether the value holds any numeric kind.
func (val *Value) IsNumber() bool {
	switch val.data.(type) {
	case int64, uint64, float64:
		return true
	default:
		return false
	}
}

// IsScalar reports whether the value holds neither a mapping nor a
// sequence. Null is a scalar; absent is not.
func (val *Value) IsScalar() bool {
	switch val.data.(type) {
	case *Object, *Array, absent:
		return false
	default:
		return true
	}
}

// Equal implements equality for values. Two values are equal when they
// hold equal data; containers compare structurally.
func (val *Value) Equal(other any) bool {
	if other == nil {
		return val == nil
	}
	ov, isValue := other.(*Value)
	if !isValue {
		return false
	}
	if val == nil || ov == nil {
		return val == ov
	}
	if val.data == nil || ov.data == nil {
		return val.data == nil && ov.data == nil
	}
	return dyn.Equal(val.data, ov.data)
}

// Compare provides an ordering over values of mutually comparable
// kinds. Null sorts before everything else. It returns a negative
// number when val sorts before other, zero when equal, and a positive
// number otherwise.
func (val *Value) Compare(other *Value) int {
	lhsNull := val == nil || val.data == nil
	rhsNull := other == nil || other.data == nil
	switch {
	case lhsNull && rhsNull:
		return 0
	case lhsNull:
		return -1
	case rhsNull:
		return 1
	}
	return dyn.Compare(val.data, other.data)
}

// Merge combines another value into this one. Two mappings merge
// recursively and accretively: keys present in both are merged, keys
// only in other are added, and no keys are removed. For any other
// pairing the incoming value wins, except that merging a non-mapping
// into a mapping keeps the mapping. Merging an absent value is a no-op.
func (val *Value) Merge(other *Value) *Value {
	if other == nil || other.IsAbsent() {
		return val
	}
	if val == nil || val.IsAbsent() {
		return other
	}
	if obj, ok := val.data.(*Object); ok {
		if oo, isObject := other.data.(*Object); isObject {
			return FromNative(obj.Merge(oo))
		}
		return val
	}
	return other
}

// ToNative converts the value to native go data: map[string]any for
// mappings, []any for sequences, nil for null and absent, and the held
// scalar otherwise.
func (val *Value) ToNative() any {
	if val == nil {
		return nil
	}
	switch d := val.data.(type) {
	case *Object:
		return d.ToNative()
	case *Array:
		return d.ToNative()
	case absent:
		return nil
	default:
		return d
	}
}

// String returns a compact JSON rendering of the value. The absent
// marker renders as "<absent>".
func (val *Value) String() string {
	if val == nil || val.IsAbsent() {
		return "<absent>"
	}
	data, err := Encode(val, FormatJSON)
	if err != nil {
		return fmt.Sprintf("%v", val.data)
	}
	return string(data)
}
