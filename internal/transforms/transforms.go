// Package transforms provides the named value transforms available to
// the over CLI command and MCP tool.
//
// Each transform is a lens.UpdateFunc that rewrites a focused value.
// Transforms are total: values of a kind the transform does not apply
// to, including the absent marker, pass through unchanged.
package transforms

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/lens"
)

// titleCaser performs English title casing for the title transform.
var titleCaser = cases.Title(language.English)

// registry maps transform names to implementations. Names are
// lowercase and stable; they appear in CLI help and MCP tool schemas.
var registry = map[string]lens.UpdateFunc{
	"upper":     upper,
	"lower":     lower,
	"title":     title,
	"trim":      trim,
	"negate":    negate,
	"increment": increment,
	"decrement": decrement,
	"not":       not,
	"stringify": stringify,
}

// Lookup returns the transform registered under name.
func Lookup(name string) (lens.UpdateFunc, bool) {
	fn, ok := registry[strings.ToLower(name)]
	return fn, ok
}

// Names returns all registered transform names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func upper(v *document.Value) *document.Value {
	if s, ok := v.ToString(); ok {
		return document.String(strings.ToUpper(s))
	}
	return v
}

func lower(v *document.Value) *document.Value {
	if s, ok := v.ToString(); ok {
		return document.String(strings.ToLower(s))
	}
	return v
}

func title(v *document.Value) *document.Value {
	if s, ok := v.ToString(); ok {
		return document.String(titleCaser.String(s))
	}
	return v
}

func trim(v *document.Value) *document.Value {
	if s, ok := v.ToString(); ok {
		return document.String(strings.TrimSpace(s))
	}
	return v
}

func negate(v *document.Value) *document.Value {
	return shift(v, func(i int64) int64 { return -i }, func(f float64) float64 { return -f })
}

func increment(v *document.Value) *document.Value {
	return shift(v, func(i int64) int64 { return i + 1 }, func(f float64) float64 { return f + 1 })
}

func decrement(v *document.Value) *document.Value {
	return shift(v, func(i int64) int64 { return i - 1 }, func(f float64) float64 { return f - 1 })
}

// shift applies an integer or float rewrite to a numeric value.
// Uints that fit in an int64 take the integer branch so that negate
// and decrement can cross zero.
func shift(v *document.Value, ints func(int64) int64, floats func(float64) float64) *document.Value {
	switch {
	case v.IsAbsent():
		return v
	case v.IsInt():
		return document.Int(ints(v.AsInt()))
	case v.IsUint():
		u := v.AsUint()
		if u <= math.MaxInt64 {
			return document.Int(ints(int64(u)))
		}
		return document.Float(floats(float64(u)))
	case v.IsFloat():
		return document.Float(floats(v.AsFloat()))
	}
	return v
}

func not(v *document.Value) *document.Value {
	if b, ok := v.ToBool(); ok {
		return document.Bool(!b)
	}
	return v
}

// stringify renders any present value as a string. Strings pass
// through, scalars use their text form, and containers render as
// compact JSON.
func stringify(v *document.Value) *document.Value {
	switch {
	case v.IsAbsent():
		return v
	case v.IsString():
		return v
	}
	return document.String(v.String())
}
