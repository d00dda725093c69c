package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/internal/testutil"
	"github.com/erraggy/lenstools/lenserrors"
	"github.com/erraggy/lenstools/path"
)

func TestApplier_Apply_Assoc(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	t.Run("replaces existing value", func(t *testing.T) {
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("one"), WithValue(5)))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Applied)
		assert.Equal(t, 0, result.Skipped)
		assert.True(t, result.HasChanges())
		assert.False(t, result.HasWarnings())
		assert.True(t, result.Document.AsObject().At("one").Equal(document.Int(5)))
		assert.True(t, doc.AsObject().At("one").Equal(document.Int(1)), "input document should be untouched")

		require.Len(t, result.Changes, 1)
		change := result.Changes[0]
		assert.Equal(t, 0, change.EntryIndex)
		assert.Equal(t, ActionAssoc, change.Action)
		assert.Equal(t, "one", change.Path)
		assert.True(t, change.Before.Equal(document.Int(1)))
		assert.True(t, change.After.Equal(document.Int(5)))
	})

	t.Run("creates missing intermediates", func(t *testing.T) {
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("a.b.c"), WithValue("deep")))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		got, found := document.Resolve(result.Document, path.MustParse("a.b.c"))
		require.True(t, found)
		assert.Equal(t, "deep", got.AsString())

		require.Len(t, result.Changes, 1)
		assert.True(t, result.Changes[0].Before.IsAbsent())
	})

	t.Run("same value is a no-op warning", func(t *testing.T) {
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("one"), WithValue(1)))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Applied)
		assert.Equal(t, 1, result.Skipped)
		assert.Same(t, doc, result.Document, "no-op application should return the input document")
		require.True(t, result.HasWarnings())
		assert.Contains(t, result.Warnings[0], `entry[0] path "one"`)
		assert.Len(t, result.StructuredWarnings.ByCategory(WarnNoOp), 1)
	})

	t.Run("overwrites conflicting kinds by default", func(t *testing.T) {
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("one.deeper"), WithValue(true)))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Applied)
		got, found := document.Resolve(result.Document, path.MustParse("one.deeper"))
		require.True(t, found)
		assert.True(t, got.AsBool())
	})
}

func TestApplier_Apply_AssocStrict(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	t.Run("key step through scalar conflicts", func(t *testing.T) {
		applier := &Applier{StrictTargets: true}
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("one.deeper"), WithValue(true)))

		_, err := applier.Apply(doc, script)
		require.Error(t, err)
		assert.ErrorIs(t, err, lenserrors.ErrTypeConflict)

		var confErr *lenserrors.TypeConflictError
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, "one", confErr.Path)
		assert.Equal(t, "mapping", confErr.WantKind)
		assert.Equal(t, "int", confErr.GotKind)
	})

	t.Run("index step through mapping conflicts", func(t *testing.T) {
		applier := &Applier{StrictTargets: true}
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("nest[0]"), WithValue(true)))

		_, err := applier.Apply(doc, script)
		require.Error(t, err)

		var confErr *lenserrors.TypeConflictError
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, "nest", confErr.Path)
		assert.Equal(t, "sequence", confErr.WantKind)
		assert.Equal(t, "mapping", confErr.GotKind)
	})

	t.Run("null values are creatable", func(t *testing.T) {
		hollow := document.FromNative(map[string]any{"hollow": nil})
		applier := &Applier{StrictTargets: true}
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("hollow.x"), WithValue(1)))

		result, err := applier.Apply(hollow, script)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Applied)
	})

	t.Run("missing intermediates are creatable", func(t *testing.T) {
		applier := &Applier{StrictTargets: true}
		script := NewScript(NewEntry(ActionAssoc, path.MustParse("a.b.c"), WithValue(1)))

		result, err := applier.Apply(doc, script)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Applied)
	})
}

func TestApplier_Apply_Delete(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	t.Run("removes existing value", func(t *testing.T) {
		script := NewScript(NewEntry(ActionDelete, path.MustParse("nest.two")))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Applied)
		nest := result.Document.AsObject().At("nest")
		assert.False(t, nest.AsObject().Contains("two"))

		require.Len(t, result.Changes, 1)
		change := result.Changes[0]
		assert.Equal(t, ActionDelete, change.Action)
		assert.True(t, change.Before.Equal(document.Int(2)))
		assert.True(t, change.After.IsAbsent())
	})

	t.Run("missing target warns by default", func(t *testing.T) {
		script := NewScript(NewEntry(ActionDelete, path.MustParse("ghost")))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Applied)
		assert.Equal(t, 1, result.Skipped)
		assert.Same(t, doc, result.Document)
		assert.Len(t, result.StructuredWarnings.ByCategory(WarnMissingTarget), 1)
		assert.Contains(t, result.Warnings[0], "target does not exist")
	})

	t.Run("missing target fails in strict mode", func(t *testing.T) {
		applier := &Applier{StrictTargets: true}
		script := NewScript(NewEntry(ActionDelete, path.MustParse("ghost")))

		_, err := applier.Apply(doc, script)
		require.Error(t, err)
		assert.ErrorIs(t, err, lenserrors.ErrTarget)

		var targetErr *lenserrors.TargetError
		require.ErrorAs(t, err, &targetErr)
		assert.Equal(t, "ghost", targetErr.Path)
	})
}

func TestApplier_Apply_Merge(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	t.Run("folds into existing mapping", func(t *testing.T) {
		script := NewScript(NewEntry(ActionMerge, path.MustParse("nest"), WithValue(map[string]any{"three": 3})))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Applied)
		nest := result.Document.AsObject().At("nest").AsObject()
		assert.True(t, nest.At("two").Equal(document.Int(2)))
		assert.True(t, nest.At("three").Equal(document.Int(3)))

		require.Len(t, result.Changes, 1)
		assert.True(t, result.Changes[0].After.AsObject().Contains("three"))
	})

	t.Run("missing target degrades to assoc by default", func(t *testing.T) {
		script := NewScript(NewEntry(ActionMerge, path.MustParse("ghost"), WithValue(map[string]any{"a": 1})))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Applied)
		assert.False(t, result.HasWarnings())
		got, found := document.Resolve(result.Document, path.MustParse("ghost.a"))
		require.True(t, found)
		assert.True(t, got.Equal(document.Int(1)))
		assert.True(t, result.Changes[0].Before.IsAbsent())
	})

	t.Run("missing target fails in strict mode", func(t *testing.T) {
		applier := &Applier{StrictTargets: true}
		script := NewScript(NewEntry(ActionMerge, path.MustParse("ghost"), WithValue(map[string]any{"a": 1})))

		_, err := applier.Apply(doc, script)
		require.Error(t, err)
		assert.ErrorIs(t, err, lenserrors.ErrTarget)
	})

	t.Run("merge without effect is a no-op warning", func(t *testing.T) {
		script := NewScript(NewEntry(ActionMerge, path.MustParse("nest"), WithValue(map[string]any{"two": 2})))

		result, err := NewApplier().Apply(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Applied)
		assert.Equal(t, 1, result.Skipped)
		assert.Len(t, result.StructuredWarnings.ByCategory(WarnNoOp), 1)
	})
}

func TestApplier_Apply_Sequencing(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	script := NewScript(
		NewEntry(ActionAssoc, path.MustParse("items[0].name"), WithValue("z")),
		NewEntry(ActionDelete, path.MustParse("items[1]")),
		NewEntry(ActionMerge, path.MustParse("nest"), WithValue(map[string]any{"three": 3})),
		NewEntry(ActionDelete, path.MustParse("ghost")),
	)

	result, err := NewApplier().Apply(doc, script)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Applied)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Changes, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{
		result.Changes[0].EntryIndex,
		result.Changes[1].EntryIndex,
		result.Changes[2].EntryIndex,
	})

	items := result.Document.AsObject().At("items").AsArray()
	assert.Equal(t, 1, items.Length(), "second item should be deleted")
	assert.Equal(t, "z", items.At(0).AsObject().At("name").AsString())
}

func TestApplier_Apply_EmptyScript(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	result, err := NewApplier().Apply(doc, NewScript())
	require.NoError(t, err)

	assert.Same(t, doc, result.Document)
	assert.Equal(t, 0, result.Applied)
	assert.False(t, result.HasChanges())
}

func TestApplier_Apply_InvalidScript(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	t.Run("nil script", func(t *testing.T) {
		_, err := NewApplier().Apply(doc, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, lenserrors.ErrConfig)
	})

	t.Run("unknown action", func(t *testing.T) {
		script := &Script{Entries: []Entry{{Action: "replace", Path: path.MustParse("one")}}}
		_, err := NewApplier().Apply(doc, script)
		require.Error(t, err)
		assert.ErrorIs(t, err, lenserrors.ErrConfig)
	})
}

func TestApplier_Apply_Logging(t *testing.T) {
	doc := testutil.NewSimpleDocument()
	logger := &testutil.RecordingLogger{}
	applier := &Applier{Logger: logger}

	script := NewScript(
		NewEntry(ActionAssoc, path.MustParse("one"), WithValue(5)),
		NewEntry(ActionDelete, path.MustParse("ghost")),
	)

	_, err := applier.Apply(doc, script)
	require.NoError(t, err)

	assert.Equal(t, []string{"edit entry applied"}, logger.Messages("debug"))
	assert.Equal(t, []string{"edit entry skipped"}, logger.Messages("warn"))
}

func TestApplier_DryRun(t *testing.T) {
	doc := testutil.NewSimpleDocument()

	t.Run("previews changes without applying them", func(t *testing.T) {
		script := NewScript(
			NewEntry(ActionAssoc, path.MustParse("one"), WithValue(5)),
			NewEntry(ActionDelete, path.MustParse("nest.two")),
		)

		result, err := NewApplier().DryRun(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 2, result.WouldApply)
		assert.Equal(t, 0, result.WouldSkip)
		assert.True(t, result.HasChanges())
		assert.False(t, result.HasWarnings())
		assert.True(t, doc.AsObject().At("one").Equal(document.Int(1)), "input document should be untouched")

		require.Len(t, result.Changes, 2)
		assert.Equal(t, "one", result.Changes[0].Path)
		assert.True(t, result.Changes[0].After.Equal(document.Int(5)))
		assert.Equal(t, "nest.two", result.Changes[1].Path)
		assert.True(t, result.Changes[1].After.IsAbsent())
	})

	t.Run("previews each entry against its predecessors", func(t *testing.T) {
		script := NewScript(
			NewEntry(ActionAssoc, path.MustParse("a.b"), WithValue(1)),
			NewEntry(ActionDelete, path.MustParse("a.b")),
		)

		result, err := NewApplier().DryRun(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 2, result.WouldApply, "delete should see the value the first entry would create")
	})

	t.Run("skipped entries warn", func(t *testing.T) {
		script := NewScript(
			NewEntry(ActionDelete, path.MustParse("ghost")),
			NewEntry(ActionAssoc, path.MustParse("one"), WithValue(1)),
		)

		result, err := NewApplier().DryRun(doc, script)
		require.NoError(t, err)

		assert.Equal(t, 0, result.WouldApply)
		assert.Equal(t, 2, result.WouldSkip)
		assert.False(t, result.HasChanges())
		assert.Len(t, result.StructuredWarnings.ByCategory(WarnMissingTarget), 1)
		assert.Len(t, result.StructuredWarnings.ByCategory(WarnNoOp), 1)
	})

	t.Run("strict failures become would_fail warnings", func(t *testing.T) {
		applier := &Applier{StrictTargets: true}
		script := NewScript(
			NewEntry(ActionDelete, path.MustParse("ghost")),
			NewEntry(ActionAssoc, path.MustParse("one.deeper"), WithValue(true)),
			NewEntry(ActionAssoc, path.MustParse("fresh"), WithValue("ok")),
		)

		result, err := applier.DryRun(doc, script)
		require.NoError(t, err, "dry run should examine the whole script instead of aborting")

		assert.Equal(t, 1, result.WouldApply)
		assert.Equal(t, 2, result.WouldSkip)

		failures := result.StructuredWarnings.ByCategory(WarnWouldFail)
		require.Len(t, failures, 2)
		assert.Equal(t, 0, failures[0].EntryIndex)
		assert.Contains(t, failures[0].Message, "target not found")
		assert.Equal(t, 1, failures[1].EntryIndex)
		assert.Contains(t, result.Warnings[0], `entry[0] path "ghost"`)
	})

	t.Run("invalid script fails", func(t *testing.T) {
		script := &Script{Entries: []Entry{{Action: "replace", Path: path.MustParse("one")}}}
		_, err := NewApplier().DryRun(doc, script)
		require.Error(t, err)
		assert.ErrorIs(t, err, lenserrors.ErrConfig)
	})
}

func TestApplyWarning_String(t *testing.T) {
	warn := NewMissingTargetWarning(2, "a.b")
	assert.Equal(t, `entry[2] path "a.b": target does not exist`, warn.String())

	bare := &ApplyWarning{Category: WarnNoOp, EntryIndex: 0, Path: "x"}
	assert.Equal(t, `entry[0] path "x": no_op`, bare.String())
}

func TestApplyWarnings_ByCategory(t *testing.T) {
	warnings := ApplyWarnings{
		NewMissingTargetWarning(0, "a"),
		NewNoOpWarning(1, "b"),
		NewMissingTargetWarning(2, "c"),
		nil,
	}

	missing := warnings.ByCategory(WarnMissingTarget)
	require.Len(t, missing, 2)
	assert.Equal(t, "a", missing[0].Path)
	assert.Equal(t, "c", missing[1].Path)
	assert.Empty(t, warnings.ByCategory(WarningCategory("other")))
}
