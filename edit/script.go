package edit

import (
	"fmt"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
)

const (
	// ActionAssoc places the entry's value at the entry's path.
	ActionAssoc Action = "assoc"
	// ActionDelete removes the value at the entry's path.
	ActionDelete Action = "delete"
	// ActionMerge merges the entry's value into the value at the
	// entry's path.
	ActionMerge Action = "merge"
)

// Action is an operation an edit entry performs on a document.
type Action string

// String returns the Action as a string.
func (a Action) String() string {
	return string(a)
}

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	switch a {
	case ActionAssoc, ActionDelete, ActionMerge:
		return true
	default:
		return false
	}
}

// ParseAction converts the wire form of an action into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("edit: unknown action %q", s)
	}
	return a, nil
}

// Entry is one step of an edit script: the action to perform, the path
// to perform it at, and the value to use, if any.
type Entry struct {
	Action Action
	Path   path.Path
	Value  *document.Value
}

// value returns the entry's value with a missing value normalized to
// null, which is what an assoc or merge without a value stores.
func (e Entry) value() *document.Value {
	if e.Value == nil {
		return document.Null()
	}
	return e.Value
}

func (e Entry) evalAssoc() func(*document.Value) *document.Value {
	p, value := e.Path, e.value()
	return func(doc *document.Value) *document.Value {
		return document.Assoc(doc, p, value)
	}
}

func (e Entry) evalDelete() func(*document.Value) *document.Value {
	p := e.Path
	return func(doc *document.Value) *document.Value {
		return document.Delete(doc, p)
	}
}

func (e Entry) evalMerge() func(*document.Value) *document.Value {
	p, value := e.Path, e.value()
	return func(doc *document.Value) *document.Value {
		cur, _ := document.Resolve(doc, p)
		return document.Assoc(doc, p, cur.Merge(value))
	}
}

func (e Entry) eval() func(*document.Value) *document.Value {
	switch e.Action {
	case ActionAssoc:
		return e.evalAssoc()
	case ActionDelete:
		return e.evalDelete()
	case ActionMerge:
		return e.evalMerge()
	default:
		panic(fmt.Errorf("edit: unknown action %v", e.Action))
	}
}

type entryOptions struct {
	value *document.Value
}

// EntryOption is a constructor for the optional parts of an Entry.
type EntryOption func(*entryOptions)

// WithValue produces an EntryOption that populates the value field of
// an Entry. The value is converted with document.FromNative.
func WithValue(val any) EntryOption {
	return func(o *entryOptions) {
		o.value = document.FromNative(val)
	}
}

// NewEntry constructs a new Entry from the provided parameters.
// The last option wins if two write the same option.
func NewEntry(action Action, p path.Path, options ...EntryOption) Entry {
	var opts entryOptions
	for _, option := range options {
		option(&opts)
	}
	return Entry{
		Action: action,
		Path:   p,
		Value:  opts.value,
	}
}

// Script is an ordered list of edit entries applied first to last.
type Script struct {
	Entries []Entry
}

// NewScript produces a new Script from the provided entries. This
// allows one to declaratively build a script:
//
//	script := edit.NewScript(
//	    edit.NewEntry(edit.ActionAssoc, path.MustParse("nest.two"),
//	        edit.WithValue(22)),
//	    edit.NewEntry(edit.ActionDelete, path.MustParse("one")),
//	)
func NewScript(entries ...Entry) *Script {
	return &Script{
		Entries: entries,
	}
}

// Len returns the number of entries in the script.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// Eval compiles the script into a single document transform. The
// transform applies every entry in order without any of Applier's
// bookkeeping. Eval panics on entries with an unknown action; run
// Validate first for untrusted scripts.
func (s *Script) Eval() func(*document.Value) *document.Value {
	entries := make([]func(*document.Value) *document.Value, len(s.Entries))
	for i, entry := range s.Entries {
		entries[i] = entry.eval()
	}
	return func(doc *document.Value) *document.Value {
		for _, apply := range entries {
			doc = apply(doc)
		}
		return doc
	}
}

// String returns the script in its JSON wire form.
func (s *Script) String() string {
	data, _ := s.Marshal(document.FormatJSON)
	return string(data)
}
