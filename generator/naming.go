// This file implements identifier derivation from document paths,
// including reserved word escaping and PascalCase conversion.

package generator

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/lenstools/path"
)

// titleCaser capitalizes word-initial runes. cases.NoLower keeps the
// rest of the word untouched so inner capitals like "apiVersion"
// survive as ApiVersion rather than Apiversion.
var titleCaser = cases.Title(language.English, cases.NoLower)

// goReservedWords contains Go reserved keywords that cannot be used as
// identifiers. Only actual keywords are included, not predeclared
// identifiers like "error", because those can be shadowed and are
// commonly used as names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeReservedWord checks if a name is a Go reserved keyword and
// escapes it by appending an underscore if necessary. The check is
// case-insensitive because PascalCase names like "Range" or "Type"
// should still be escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// identFromPath derives a Go identifier from a path. Key segments are
// split on non-alphanumeric runes with each word title-cased, index
// segments contribute their decimal digits. The root path maps to
// "Root". Names that would start with a digit are prefixed with "At".
func identFromPath(p path.Path) string {
	if p.IsRoot() {
		return "Root"
	}

	var b strings.Builder
	for _, seg := range p.Segments() {
		if seg.IsIndex() {
			b.WriteString(strconv.Itoa(seg.Index()))
			continue
		}
		writePascalWords(&b, seg.Key())
	}

	name := b.String()
	if name == "" {
		// Keys made entirely of symbols leave nothing behind.
		return "Root"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "At" + name
	}
	return escapeReservedWord(name)
}

// writePascalWords appends the PascalCase form of key to b. Separators
// are any runes that are neither letters nor digits.
func writePascalWords(b *strings.Builder, key string) {
	capitalizeNext := true
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			b.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			b.WriteRune(r)
		}
	}
}

// isValidPackageName reports whether name is usable as a Go package
// clause identifier.
func isValidPackageName(name string) bool {
	if name == "" || goReservedWords[name] {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if unicode.IsDigit(r) && i > 0 {
			continue
		}
		return false
	}
	return true
}

// isValidIdentPrefix reports whether prefix can start a Go identifier.
// The empty prefix is valid.
func isValidIdentPrefix(prefix string) bool {
	for i, r := range prefix {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if unicode.IsDigit(r) && i > 0 {
			continue
		}
		return false
	}
	return true
}
