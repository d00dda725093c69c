// Package edit provides declarative, replayable edit scripts for documents.
//
// A script is an ordered list of entries, each pairing an action with a
// path and, for assoc and merge actions, a value. Scripts are plain
// data: they serialize to YAML or JSON, travel well between processes,
// and apply to any document.
//
// # Quick Start
//
// Build and apply a script programmatically:
//
//	script := edit.NewScript(
//	    edit.NewEntry(edit.ActionAssoc, path.MustParse("spec.replicas"), edit.WithValue(5)),
//	    edit.NewEntry(edit.ActionDelete, path.MustParse("metadata.labels.canary")),
//	)
//	result, err := edit.NewApplier().Apply(doc, script)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("applied %d entries\n", result.Applied)
//
// Or parse one from YAML:
//
//	entries:
//	  - action: assoc
//	    path: spec.replicas
//	    value: 5
//	  - action: delete
//	    path: metadata.labels.canary
//
// # Action Types
//
// Assoc stores a value at a path, creating missing intermediate
// containers. Delete removes the value at a path. Merge recursively
// folds a value into the existing value at a path, with incoming
// scalars replacing existing ones.
//
// # Strict and Non-Strict Application
//
// By default the Applier skips delete entries whose targets are
// missing with a warning, and assoc overwrites values whose kind
// conflicts with a path step. Setting [Applier.StrictTargets] turns
// both cases into errors that abort the whole application.
// [Applier.DryRun] previews a script under the same settings without
// producing the transformed document.
//
// # Diffing
//
// [Diff] computes the script that transforms one document into
// another, which makes edits between document versions inspectable and
// replayable:
//
//	script := edit.Diff(before, after)
//	data, _ := script.Marshal(document.FormatYAML)
package edit
