package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMalformedYAML writes a file that fails YAML decoding.
func writeMalformedYAML(t *testing.T) string {
	t.Helper()
	malformedFile := filepath.Join(t.TempDir(), "malformed.yaml")
	require.NoError(t, os.WriteFile(malformedFile, []byte("not: valid: yaml: [unclosed"), 0644))
	return malformedFile
}

// TestHandleView_ErrorPaths tests error handling for the view command.
func TestHandleView_ErrorPaths(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		err := HandleView([]string{"/nonexistent/path/to/file.yaml"})
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		err := HandleView([]string{writeMalformedYAML(t)})
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		malformedFile := filepath.Join(tmpDir, "malformed.json")
		require.NoError(t, os.WriteFile(malformedFile, []byte(`{"unclosed": `), 0644))
		err := HandleView([]string{malformedFile})
		assert.Error(t, err)
	})
}

// TestHandleSet_ErrorPaths tests error handling for the set command.
func TestHandleSet_ErrorPaths(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		err := HandleSet([]string{"-v", "5", "/nonexistent/path/to/file.yaml"})
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		err := HandleSet([]string{"-v", "5", writeMalformedYAML(t)})
		assert.Error(t, err)
	})

	t.Run("malformed value literal", func(t *testing.T) {
		docFile := writeTestDocument(t, "deploy.yaml", testDeploymentYAML)
		err := HandleSet([]string{"-v", `{"unclosed": `, "-q", docFile})
		assert.Error(t, err)
	})
}

// TestHandleOver_ErrorPaths tests error handling for the over command.
func TestHandleOver_ErrorPaths(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		err := HandleOver([]string{"-t", "upper", "/nonexistent/path/to/file.yaml"})
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		err := HandleOver([]string{"-t", "upper", writeMalformedYAML(t)})
		assert.Error(t, err)
	})
}

// TestHandlePatch_ErrorPaths tests error handling for the patch command.
func TestHandlePatch_ErrorPaths(t *testing.T) {
	t.Run("non-existent document", func(t *testing.T) {
		scriptFile := writeTestDocument(t, "scale.yaml", testScaleScriptYAML)
		err := HandlePatch([]string{"-s", scriptFile, "/nonexistent/path/to/file.yaml"})
		assert.Error(t, err)
	})

	t.Run("non-existent script", func(t *testing.T) {
		docFile := writeTestDocument(t, "deploy.yaml", testDeploymentYAML)
		err := HandlePatch([]string{"-s", "/nonexistent/path/to/script.yaml", docFile})
		assert.Error(t, err)
	})

	t.Run("malformed script", func(t *testing.T) {
		docFile := writeTestDocument(t, "deploy.yaml", testDeploymentYAML)
		err := HandlePatch([]string{"-s", writeMalformedYAML(t), docFile})
		assert.Error(t, err)
	})
}

// TestHandleDiff_ErrorPaths tests error handling for the diff command.
func TestHandleDiff_ErrorPaths(t *testing.T) {
	t.Run("non-existent base", func(t *testing.T) {
		docFile := writeTestDocument(t, "deploy.yaml", testDeploymentYAML)
		err := HandleDiff([]string{"/nonexistent/path/to/file.yaml", docFile})
		assert.Error(t, err)
	})

	t.Run("non-existent revision", func(t *testing.T) {
		docFile := writeTestDocument(t, "deploy.yaml", testDeploymentYAML)
		err := HandleDiff([]string{docFile, "/nonexistent/path/to/file.yaml"})
		assert.Error(t, err)
	})
}

// TestHandlePaths_ErrorPaths tests error handling for the paths command.
func TestHandlePaths_ErrorPaths(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		err := HandlePaths([]string{"/nonexistent/path/to/file.yaml"})
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		err := HandlePaths([]string{writeMalformedYAML(t)})
		assert.Error(t, err)
	})
}

// TestHandleGenerate_ErrorPaths tests error handling for the generate command.
func TestHandleGenerate_ErrorPaths(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		err := HandleGenerate([]string{"/nonexistent/path/to/file.yaml"})
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		err := HandleGenerate([]string{writeMalformedYAML(t)})
		assert.Error(t, err)
	})
}
