package edit

import (
	"fmt"

	"github.com/erraggy/lenstools/document"
)

// ApplyResult contains the result of applying a script to a document.
type ApplyResult struct {
	// Document is the transformed document. The input document is
	// never modified.
	Document *document.Value

	// Applied is the number of entries that changed the document.
	Applied int

	// Skipped is the number of entries that were skipped.
	Skipped int

	// Changes records details of each applied change.
	Changes []ChangeRecord

	// Warnings contains formatted messages for non-fatal issues
	// encountered during application.
	Warnings []string

	// StructuredWarnings contains detailed warning information with
	// context.
	StructuredWarnings ApplyWarnings
}

// AddWarning adds a structured warning and populates the flat Warnings
// slice.
func (r *ApplyResult) AddWarning(w *ApplyWarning) {
	r.StructuredWarnings = append(r.StructuredWarnings, w)
	r.Warnings = append(r.Warnings, w.String())
}

// HasChanges returns true if any entries were applied.
func (r *ApplyResult) HasChanges() bool {
	return r.Applied > 0
}

// HasWarnings returns true if any warnings were generated.
func (r *ApplyResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ChangeRecord describes a single change made during application.
type ChangeRecord struct {
	// EntryIndex is the zero-based index of the entry in the script.
	EntryIndex int

	// Action is the action that was performed.
	Action Action

	// Path is the canonical text of the path that was edited.
	Path string

	// Before is the value at the path before the change, or the
	// absent marker if there was none.
	Before *document.Value

	// After is the value at the path after the change, or the absent
	// marker for deletions.
	After *document.Value
}

// DryRunResult contains the result of previewing a script against a
// document without applying it.
type DryRunResult struct {
	// Changes records each change the script would make.
	Changes []ChangeRecord

	// WouldApply is the number of entries that would change the
	// document.
	WouldApply int

	// WouldSkip is the number of entries that would be skipped or
	// rejected.
	WouldSkip int

	// Warnings contains formatted messages for entries that would be
	// skipped or rejected.
	Warnings []string

	// StructuredWarnings contains detailed warning information with
	// context.
	StructuredWarnings ApplyWarnings
}

// AddWarning adds a structured warning and populates the flat Warnings
// slice.
func (r *DryRunResult) AddWarning(w *ApplyWarning) {
	r.StructuredWarnings = append(r.StructuredWarnings, w)
	r.Warnings = append(r.Warnings, w.String())
}

// HasChanges returns true if any entries would be applied.
func (r *DryRunResult) HasChanges() bool {
	return r.WouldApply > 0
}

// HasWarnings returns true if any warnings would occur.
func (r *DryRunResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// WarningCategory identifies the type of apply warning.
type WarningCategory string

const (
	// WarnMissingTarget indicates an entry's path resolved to nothing.
	WarnMissingTarget WarningCategory = "missing_target"
	// WarnNoOp indicates an entry would not have changed the document.
	WarnNoOp WarningCategory = "no_op"
	// WarnWouldFail indicates an entry that application would reject
	// as an error. Only dry runs report this category.
	WarnWouldFail WarningCategory = "would_fail"
)

// ApplyWarning represents a structured warning from script application.
type ApplyWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// EntryIndex is the zero-based index of the entry.
	EntryIndex int
	// Path is the canonical text of the entry's path.
	Path string
	// Message describes the warning.
	Message string
}

// String returns a formatted warning message.
func (w *ApplyWarning) String() string {
	if w.Message != "" {
		return fmt.Sprintf("entry[%d] path %q: %s", w.EntryIndex, w.Path, w.Message)
	}
	return fmt.Sprintf("entry[%d] path %q: %s", w.EntryIndex, w.Path, w.Category)
}

// NewMissingTargetWarning creates a warning for an entry whose path
// resolved to nothing.
func NewMissingTargetWarning(entryIndex int, pathText string) *ApplyWarning {
	return &ApplyWarning{
		Category:   WarnMissingTarget,
		EntryIndex: entryIndex,
		Path:       pathText,
		Message:    "target does not exist",
	}
}

// NewNoOpWarning creates a warning for an entry that would not change
// the document.
func NewNoOpWarning(entryIndex int, pathText string) *ApplyWarning {
	return &ApplyWarning{
		Category:   WarnNoOp,
		EntryIndex: entryIndex,
		Path:       pathText,
		Message:    "no change",
	}
}

// ApplyWarnings is a collection of ApplyWarning.
type ApplyWarnings []*ApplyWarning

// ByCategory filters warnings by category.
func (ws ApplyWarnings) ByCategory(cat WarningCategory) ApplyWarnings {
	var result ApplyWarnings
	for _, w := range ws {
		if w != nil && w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}
