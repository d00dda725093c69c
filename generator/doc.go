// Package generator emits Go source code declaring named lenses for
// the leaf paths of a sample document.
//
// Given a representative document, the generator walks every leaf and
// produces one path constant and one lens.Lens variable per leaf, so
// callers get compile-time names for the paths they care about instead
// of repeating string literals:
//
//	doc, _, err := document.LoadFile("deployment.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := generator.Generate(doc,
//		generator.WithPackageName("deploylens"),
//		generator.WithVarPrefix("Deploy"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFile("deploylens/lenses.go"); err != nil {
//		log.Fatal(err)
//	}
//
// # Identifier Derivation
//
// Identifiers are derived from path segments: key segments are split on
// non-alphanumeric runes and title-cased, index segments contribute
// their digits. The path "spec.containers[0].image" becomes
// SpecContainers0Image, with the path text available as the constant
// SpecContainers0ImagePath. Names that collide after derivation get a
// numeric suffix. Go keywords are escaped with a trailing underscore.
//
// # Output
//
// Generated source is processed with golang.org/x/tools/imports, so it
// is gofmt-formatted and carries exactly the imports it needs.
package generator
