package edit

import (
	"fmt"

	"github.com/erraggy/lenstools/lenserrors"
)

// Validate checks a script for structural problems and returns all
// errors found. An empty script is valid; applying it returns the
// document unchanged.
//
// Validate does not inspect any document, so it cannot detect missing
// targets. Target problems surface during [Applier.Apply] as warnings
// or, with StrictTargets, as errors.
func Validate(script *Script) []error {
	if script == nil {
		return []error{&lenserrors.ConfigError{
			Option:  "script",
			Message: "script is nil",
		}}
	}

	var errs []error
	for i, entry := range script.Entries {
		if !entry.Action.IsValid() {
			errs = append(errs, &lenserrors.ConfigError{
				Option:  fmt.Sprintf("entries[%d].action", i),
				Value:   string(entry.Action),
				Message: "unknown action",
			})
		}
		if entry.Action == ActionDelete && entry.Value != nil {
			errs = append(errs, &lenserrors.ConfigError{
				Option:  fmt.Sprintf("entries[%d].value", i),
				Message: "delete entries must not carry a value",
			})
		}
		if entry.Value != nil && entry.Value.IsAbsent() {
			errs = append(errs, &lenserrors.ConfigError{
				Option:  fmt.Sprintf("entries[%d].value", i),
				Message: "the absent marker is not a storable value, use a delete entry",
			})
		}
	}
	return errs
}
