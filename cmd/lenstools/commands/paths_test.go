package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupPathsFlags(t *testing.T) {
	fs, flags := SetupPathsFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Prefix)
		assert.Zero(t, flags.MaxDepth)
		assert.False(t, flags.Leaves, "expected Leaves to be false by default")
		assert.False(t, flags.Values, "expected Values to be false by default")
		assert.Equal(t, FormatText, flags.Format)
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-p", "spec", "--max-depth", "3", "--leaves", "--values", "--format", "json", "-q", "test.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "spec", flags.Prefix)
		assert.Equal(t, 3, flags.MaxDepth)
		assert.True(t, flags.Leaves, "expected Leaves to be true")
		assert.True(t, flags.Values, "expected Values to be true")
		assert.Equal(t, "json", flags.Format)
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "test.yaml", fs.Arg(0))
	})
}

func TestHandlePaths_NoArgs(t *testing.T) {
	err := HandlePaths([]string{})
	assert.Error(t, err)
}

func TestHandlePaths_Help(t *testing.T) {
	err := HandlePaths([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandlePaths_InvalidFormat(t *testing.T) {
	err := HandlePaths([]string{"--format", "invalid", "test.yaml"})
	assert.Error(t, err)
}

func TestHandlePaths_InvalidPrefix(t *testing.T) {
	err := HandlePaths([]string{"-p", "a..b", "test.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing prefix")
}

func TestHandlePaths_Listing(t *testing.T) {
	docFile := writeTestDocument(t, "deploy.yaml", testDeploymentYAML)

	err := HandlePaths([]string{"--leaves", "--values", "-q", docFile})
	assert.NoError(t, err)
}

func TestHandlePaths_StructuredListing(t *testing.T) {
	docFile := writeTestDocument(t, "deploy.yaml", testDeploymentYAML)

	err := HandlePaths([]string{"-p", "spec", "--format", "json", "-q", docFile})
	assert.NoError(t, err)
}

func TestCompactNative(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "web", `"web"`},
		{"integer", int64(5), "5"},
		{"boolean", true, "true"},
		{"null", nil, "null"},
		{"mapping", map[string]any{"app": "web"}, `{"app":"web"}`},
		{"sequence", []any{int64(80), int64(443)}, "[80,443]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compactNative(tt.value))
		})
	}
}
