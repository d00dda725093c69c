package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/lenserrors"
	"github.com/erraggy/lenstools/path"
)

func TestValidate(t *testing.T) {
	t.Run("nil script", func(t *testing.T) {
		errs := Validate(nil)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], lenserrors.ErrConfig)
	})

	t.Run("empty script is valid", func(t *testing.T) {
		assert.Empty(t, Validate(NewScript()))
	})

	t.Run("well-formed script is valid", func(t *testing.T) {
		script := NewScript(
			NewEntry(ActionAssoc, path.MustParse("a"), WithValue(1)),
			NewEntry(ActionMerge, path.MustParse("b"), WithValue(map[string]any{"c": 2})),
			NewEntry(ActionDelete, path.MustParse("d")),
		)
		assert.Empty(t, Validate(script))
	})

	t.Run("unknown action", func(t *testing.T) {
		script := &Script{Entries: []Entry{{Action: "replace", Path: path.MustParse("a")}}}

		errs := Validate(script)
		require.Len(t, errs, 1)

		var confErr *lenserrors.ConfigError
		require.ErrorAs(t, errs[0], &confErr)
		assert.Equal(t, "entries[0].action", confErr.Option)
		assert.Equal(t, "replace", confErr.Value)
	})

	t.Run("delete with value", func(t *testing.T) {
		script := NewScript(NewEntry(ActionDelete, path.MustParse("a"), WithValue(1)))

		errs := Validate(script)
		require.Len(t, errs, 1)

		var confErr *lenserrors.ConfigError
		require.ErrorAs(t, errs[0], &confErr)
		assert.Equal(t, "entries[0].value", confErr.Option)
	})

	t.Run("absent marker as value", func(t *testing.T) {
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("a"), WithValue(document.Absent())))

		errs := Validate(script)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "absent")
	})

	t.Run("all problems reported", func(t *testing.T) {
		script := &Script{Entries: []Entry{
			{Action: "replace", Path: path.MustParse("a")},
			{Action: ActionDelete, Path: path.MustParse("b"), Value: document.Int(1)},
			{Action: ActionAssoc, Path: path.MustParse("c"), Value: document.Int(2)},
		}}

		errs := Validate(script)
		assert.Len(t, errs, 2)
	})
}
