// Package lenstools provides composable lenses for reading and
// rewriting nested JSON and YAML documents without mutation.
//
// A lens focuses one location in a document and pairs a getter with a
// setter for it. Every update returns a new document that shares all
// untouched branches with the original, so keeping many versions of a
// document is cheap and the original stays valid forever.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - document: Immutable document values with JSON and YAML codecs
//   - path: Parse and build path expressions addressing locations
//   - lens: Composable bidirectional accessors built from paths
//   - edit: Declarative edit scripts, batch application, and diffing
//   - walker: Deterministic traversal and collection over documents
//   - generator: Generate Go lens bindings from sample documents
//
// Errors shared across packages live in lenserrors.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/lenstools
//
// # Quick Start
//
// Load a document, read a value, and produce updated versions:
//
//	import (
//		"github.com/erraggy/lenstools/document"
//		"github.com/erraggy/lenstools/lens"
//		"github.com/erraggy/lenstools/path"
//	)
//
//	doc, _, err := document.LoadFile("deployment.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	replicas := lens.FromPath(path.MustParse("spec.replicas"))
//	fmt.Println(replicas.View(doc).AsInt())
//
//	scaled := replicas.Set(5, doc)
//	bumped := replicas.Over(func(v *document.Value) *document.Value {
//		return document.Int(v.AsInt() + 1)
//	}, doc)
//
// doc is unchanged; scaled and bumped are independent documents that
// share everything except the spec.replicas entry with it.
//
// # Document Package
//
// The document package defines Value, the immutable representation of
// a JSON or YAML document. Mappings and sequences are persistent
// containers, so "modifying" a value builds a new spine and shares the
// rest.
//
// Key features:
//   - Multi-format support (YAML, JSON) with format detection
//   - Persistent mappings and sequences with structural sharing
//   - Total accessors: As* with zero fallbacks, To* with ok reporting
//   - An explicit absent marker distinct from null
//   - Deterministic encoding (sorted mapping keys)
//
// Absent deserves a note: reading a location that does not exist
// yields document.Absent, not null and not an error. Null is a value a
// document can contain; absent records that there was nothing there.
//
// # Path Package
//
// The path package parses dotted path expressions into step sequences:
//
//	p, err := path.Parse(`spec.containers[0].image`)
//	q := path.MustParse(`metadata.annotations["app.kubernetes.io/name"]`)
//
// Keys containing dots or special characters use bracket quoting. The
// empty expression addresses the document root. Paths are immutable
// values; Child and Index derive longer paths without modifying the
// receiver.
//
// # Lens Package
//
// The lens package turns paths into bidirectional accessors:
//
//	image := lens.FromPath(path.MustParse("spec.containers[0].image"))
//
//	v := image.View(doc)            // focused value, or document.Absent
//	doc2 := image.Set("web:2.0", doc) // new document with the value replaced
//	doc3 := image.Over(fn, doc)       // new document with the value rewritten
//
// View is total and never errors. Set creates missing intermediate
// containers from the path shape and converts native Go values with
// document.FromNative. Lenses compose with Compose and Then, and are
// stateless: one lens serves any number of documents concurrently.
//
// # Edit Package
//
// The edit package batches changes into declarative scripts:
//
//	script := edit.NewScript(
//		edit.NewEntry(edit.ActionAssoc, path.MustParse("spec.replicas"), edit.WithValue(5)),
//		edit.NewEntry(edit.ActionDelete, path.MustParse("metadata.labels.debug")),
//	)
//
//	applier := edit.NewApplier()
//	result, err := applier.Apply(doc, script)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("applied %d, skipped %d\n", result.Applied, result.Skipped)
//
// Scripts round-trip through YAML and JSON with ParseScript and
// Marshal, so they work as files, over the wire, and in version
// control. Diff compares two documents and returns the script that
// rewrites one into the other:
//
//	script := edit.Diff(base, revision)
//
// Applying the returned script to base reproduces revision.
//
// # Walker Package
//
// The walker package traverses documents in deterministic order,
// mapping keys sorted and sequence elements by index:
//
//	err := walker.Walk(doc, walker.WithLeafHandler(
//		func(v *document.Value, p path.Path) walker.Action {
//			fmt.Printf("%s = %s\n", p, v)
//			return walker.Continue
//		},
//	))
//
// Handlers can skip subtrees or stop the walk through their return
// value. CollectLeaves, Paths, and AllPaths cover the common
// collection cases without writing a handler.
//
// # Generator Package
//
// The generator package emits a Go source file with a named lens for
// every scalar leaf of a sample document:
//
//	result, err := generator.Generate(doc, generator.WithPackageName("deploylens"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.WriteFile("internal/deploylens/lenses.go")
//
// Code reading and rewriting documents of a known shape then refers to
// deploylens.SpecReplicas instead of spelling paths as strings.
//
// # Common Workflows
//
// Diff two environments and replay the changes onto a third:
//
//	base, _, _ := document.LoadFile("staging.yaml")
//	revision, _, _ := document.LoadFile("production.yaml")
//	script := edit.Diff(base, revision)
//
//	target, _, _ := document.LoadFile("canary.yaml")
//	result, err := edit.NewApplier().Apply(target, script)
//
// Enumerate every leaf with its path:
//
//	leaves, err := walker.CollectLeaves(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, leaf := range leaves.All {
//		fmt.Printf("%s: %s\n", leaf.Path, leaf.Value.Kind())
//	}
//
// # Immutability and Concurrency
//
// Every operation in every package treats documents as immutable.
// There is no mutating API: updates return new documents, and the
// result shares every branch not on the updated path with the input.
//
// This makes values safe to share freely. A document can be read from
// any number of goroutines without synchronization, lenses are
// stateless, and an Applier is safe for concurrent use as long as its
// configuration is not changed mid-flight.
//
// # Error Handling
//
// Reads are total: a missing location yields document.Absent rather
// than an error, and transforms pass through values of kinds they do
// not apply to. Errors are reserved for real failures:
//
//   - Decode errors: malformed YAML/JSON (lenserrors.DecodeError)
//   - Path syntax errors: unparseable expressions (lenserrors.PathSyntaxError)
//   - Config errors: invalid options or formats (lenserrors.ConfigError)
//   - Target errors: strict editing against missing targets (lenserrors.TargetError)
//
// All error types support errors.Is against their sentinel and
// errors.As for field access.
//
// # Command-Line Interface
//
// In addition to the library packages, lenstools provides a
// command-line interface:
//
//	# Read a value
//	lenstools view -p spec.replicas deployment.yaml
//
//	# Store a value
//	lenstools set -p spec.replicas -v 5 deployment.yaml
//
//	# Apply a named transform
//	lenstools over -p metadata.name -t upper deployment.yaml
//
//	# Apply an edit script
//	lenstools patch -s changes.yaml deployment.yaml
//
//	# Compare two documents
//	lenstools diff v1.yaml v2.yaml
//
//	# Enumerate paths
//	lenstools paths --leaves deployment.yaml
//
//	# Generate Go lens bindings
//	lenstools generate -o lenses.go deployment.yaml
//
// Install the CLI:
//
//	go install github.com/erraggy/lenstools/cmd/lenstools@latest
//
// See docs/cli-reference.md for the full flag reference.
//
// # MCP Server
//
// lenstools mcp runs a Model Context Protocol server over stdio,
// exposing the view, set, over, patch, diff, and paths operations as
// tools for MCP clients. Configuration is read from LENSTOOLS_*
// environment variables.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/lenstools
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/lenstools
//   - JSON Specification: https://www.json.org
//   - YAML Specification: https://yaml.org/spec/
//
// # License
//
// This library is released under the MIT License. See the LICENSE file
// in the repository for full details.
package lenstools
