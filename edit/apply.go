package edit

import (
	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/lenserrors"
	"github.com/erraggy/lenstools/path"
)

// Applier applies edit scripts to documents.
type Applier struct {
	// StrictTargets causes Apply to fail when an entry deletes or
	// merges into a missing target, or when a path step conflicts
	// with the kind of an existing value. When false, missing delete
	// targets are skipped with a warning, missing merge targets are
	// created, and conflicting values are overwritten.
	StrictTargets bool

	// Logger receives debug and warning output during application.
	// When nil, logging is disabled.
	Logger document.Logger
}

// NewApplier creates a new Applier with default settings.
func NewApplier() *Applier {
	return &Applier{}
}

func (a *Applier) log() document.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return document.NopLogger{}
}

// Apply applies the script to doc and returns the result. The input
// document is never modified; the returned result carries the
// transformed document along with change records and warnings.
//
// Entries apply in order, each seeing the document produced by its
// predecessors. Invalid scripts fail before any entry is applied.
func (a *Applier) Apply(doc *document.Value, script *Script) (*ApplyResult, error) {
	if errs := Validate(script); len(errs) > 0 {
		return nil, errs[0]
	}

	log := a.log()
	result := &ApplyResult{Document: doc}

	for i, entry := range script.Entries {
		next, record, warn, err := a.applyEntry(result.Document, entry, i)
		if err != nil {
			return nil, err
		}
		if warn != nil {
			log.Warn("edit entry skipped", "index", i, "path", warn.Path, "category", string(warn.Category))
			result.AddWarning(warn)
			result.Skipped++
			continue
		}
		log.Debug("edit entry applied", "index", i, "action", entry.Action.String(), "path", record.Path)
		result.Document = next
		result.Changes = append(result.Changes, *record)
		result.Applied++
	}

	return result, nil
}

// DryRun previews what applying the script would do, without producing
// the transformed document.
//
// The preview honors the applier's settings, but entries that strict
// application would reject are reported as would_fail warnings instead
// of aborting, so the whole script is always examined. Each entry is
// previewed against the document its predecessors would have produced.
func (a *Applier) DryRun(doc *document.Value, script *Script) (*DryRunResult, error) {
	if errs := Validate(script); len(errs) > 0 {
		return nil, errs[0]
	}

	result := &DryRunResult{}
	cur := doc
	for i, entry := range script.Entries {
		next, record, warn, err := a.applyEntry(cur, entry, i)
		if err != nil {
			result.AddWarning(&ApplyWarning{
				Category:   WarnWouldFail,
				EntryIndex: i,
				Path:       entry.Path.String(),
				Message:    err.Error(),
			})
			result.WouldSkip++
			continue
		}
		if warn != nil {
			result.AddWarning(warn)
			result.WouldSkip++
			continue
		}
		cur = next
		result.Changes = append(result.Changes, *record)
		result.WouldApply++
	}

	return result, nil
}

// applyEntry applies a single entry. Exactly one of record, warn, and
// err is non-nil on return alongside the next document.
func (a *Applier) applyEntry(doc *document.Value, entry Entry, index int) (*document.Value, *ChangeRecord, *ApplyWarning, error) {
	pathText := entry.Path.String()

	switch entry.Action {
	case ActionDelete:
		before, found := document.Resolve(doc, entry.Path)
		if !found {
			if a.StrictTargets {
				return nil, nil, nil, &lenserrors.TargetError{Path: pathText, Message: "cannot delete"}
			}
			return nil, nil, NewMissingTargetWarning(index, pathText), nil
		}
		next := document.Delete(doc, entry.Path)
		return next, &ChangeRecord{
			EntryIndex: index,
			Action:     ActionDelete,
			Path:       pathText,
			Before:     before,
			After:      document.Absent(),
		}, nil, nil

	case ActionAssoc:
		if a.StrictTargets {
			if err := checkStepKinds(doc, entry.Path); err != nil {
				return nil, nil, nil, err
			}
		}
		value := entry.value()
		before, _ := document.Resolve(doc, entry.Path)
		if before.Equal(value) {
			return nil, nil, NewNoOpWarning(index, pathText), nil
		}
		next := document.Assoc(doc, entry.Path, value)
		return next, &ChangeRecord{
			EntryIndex: index,
			Action:     ActionAssoc,
			Path:       pathText,
			Before:     before,
			After:      value,
		}, nil, nil

	case ActionMerge:
		before, found := document.Resolve(doc, entry.Path)
		if !found && a.StrictTargets {
			return nil, nil, nil, &lenserrors.TargetError{Path: pathText, Message: "cannot merge"}
		}
		merged := before.Merge(entry.value())
		if merged.Equal(before) {
			return nil, nil, NewNoOpWarning(index, pathText), nil
		}
		next := document.Assoc(doc, entry.Path, merged)
		return next, &ChangeRecord{
			EntryIndex: index,
			Action:     ActionMerge,
			Path:       pathText,
			Before:     before,
			After:      merged,
		}, nil, nil
	}

	// Validate rejects unknown actions before entries are applied.
	return nil, nil, nil, &lenserrors.ConfigError{
		Option:  "action",
		Message: "unknown action " + string(entry.Action),
	}
}

// checkStepKinds verifies that every existing value traversed by p can
// accept the step that crosses it. Absent and null values are creatable
// and never conflict; any other value must be a mapping for a key step
// and a sequence for an index step.
func checkStepKinds(doc *document.Value, p path.Path) error {
	cur := doc
	prefix := path.Root()
	for _, seg := range p.Segments() {
		if cur == nil || cur.IsAbsent() || cur.IsNull() {
			return nil
		}
		if seg.IsKey() {
			obj, ok := cur.ToObject()
			if !ok {
				return &lenserrors.TypeConflictError{
					Path:     prefix.String(),
					WantKind: document.KindMapping.String(),
					GotKind:  cur.Kind().String(),
				}
			}
			cur = obj.At(seg.Key())
			prefix = prefix.Child(seg.Key())
		} else {
			arr, ok := cur.ToArray()
			if !ok {
				return &lenserrors.TypeConflictError{
					Path:     prefix.String(),
					WantKind: document.KindSequence.String(),
					GotKind:  cur.Kind().String(),
				}
			}
			cur = arr.At(seg.Index())
			prefix = prefix.Index(seg.Index())
		}
	}
	return nil
}
