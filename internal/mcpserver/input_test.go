package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestDoc(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDocInput_ResolveFile(t *testing.T) {
	docCache.reset()
	file := writeTestDoc(t, "doc.yaml", "one: 1\nnest:\n  two: 2\n")

	input := docInput{File: file}
	resolved, err := input.resolve()
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, document.FormatYAML, resolved.format)

	v, found := document.Resolve(resolved.doc, path.New("nest", "two"))
	require.True(t, found)
	got, ok := v.ToInt()
	require.True(t, ok)
	assert.Equal(t, int64(2), got)
}

func TestDocInput_ResolveContent(t *testing.T) {
	docCache.reset()
	input := docInput{Content: `{"title": "Test"}`}
	resolved, err := input.resolve()
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, document.FormatJSON, resolved.format)

	v, found := document.Resolve(resolved.doc, path.New("title"))
	require.True(t, found)
	got, ok := v.ToString()
	require.True(t, ok)
	assert.Equal(t, "Test", got)
}

func TestDocInput_ResolveNoneProvided(t *testing.T) {
	input := docInput{}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestDocInput_ResolveMultipleProvided(t *testing.T) {
	input := docInput{File: "foo.yaml", Content: "bar: 1"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestDocInput_ResolveFileNotFound(t *testing.T) {
	docCache.reset()
	input := docInput{File: "/nonexistent/doc.yaml"}
	_, err := input.resolve()
	assert.Error(t, err)
}

func TestDocInput_ResolveMalformedContent(t *testing.T) {
	docCache.reset()
	input := docInput{Content: "{not valid json"}
	_, err := input.resolve()
	assert.Error(t, err)
}

func TestDocCache_HitOnSameFile(t *testing.T) {
	docCache.reset()
	file := writeTestDoc(t, "doc.yaml", "one: 1\n")
	input := docInput{File: file}

	// First call populates cache.
	resolved1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())

	// Second call should return the same pointer (cache hit).
	resolved2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, resolved1, resolved2, "expected same pointer from cache hit")
}

func TestDocCache_MissOnModifiedFile(t *testing.T) {
	docCache.reset()

	dir := t.TempDir()
	p := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(p, []byte("title: V1\n"), 0o644))

	input := docInput{File: p}
	resolved1, err := input.resolve()
	require.NoError(t, err)
	v, found := document.Resolve(resolved1.doc, path.New("title"))
	require.True(t, found)
	assert.Equal(t, "V1", v.AsString())

	// Modify the file (change mtime).
	require.NoError(t, os.WriteFile(p, []byte("title: V2\n"), 0o644))

	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(p, future, future))

	resolved2, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, resolved1, resolved2)
	v, found = document.Resolve(resolved2.doc, path.New("title"))
	require.True(t, found)
	assert.Equal(t, "V2", v.AsString())
}

func TestDocCache_ContentHash(t *testing.T) {
	docCache.reset()
	input := docInput{Content: "title: Hash Test\n"}

	resolved1, err := input.resolve()
	require.NoError(t, err)

	// Same content should hit cache.
	resolved2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, resolved1, resolved2)
}

func TestDocCache_LRUEviction(t *testing.T) {
	docCache.reset()

	// Insert 11 documents into a cache of size 10.
	// Track the first content's cache key to verify it is evicted.
	var firstKey string
	for i := range 11 {
		content := fmt.Sprintf("title: Doc %c\n", rune('A'+i))
		if i == 0 {
			firstKey = makeCacheKey(docInput{Content: content})
		}
		input := docInput{Content: content}
		_, err := input.resolve()
		require.NoError(t, err)
	}

	// Cache should not exceed max size.
	assert.Equal(t, 10, docCache.size())

	// The first entry (oldest) should have been evicted.
	assert.Nil(t, docCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestMakeCacheKey(t *testing.T) {
	t.Run("content uses hash", func(t *testing.T) {
		key1 := makeCacheKey(docInput{Content: "a: 1"})
		key2 := makeCacheKey(docInput{Content: "a: 1"})
		key3 := makeCacheKey(docInput{Content: "a: 2"})
		assert.Equal(t, key1, key2)
		assert.NotEqual(t, key1, key3)
		assert.Contains(t, key1, "content:")
	})

	t.Run("url uses url string", func(t *testing.T) {
		key := makeCacheKey(docInput{URL: "https://example.com/doc.yaml"})
		assert.Equal(t, "url:https://example.com/doc.yaml", key)
	})

	t.Run("unstattable file yields no key", func(t *testing.T) {
		key := makeCacheKey(docInput{File: "/nonexistent/doc.yaml"})
		assert.Empty(t, key)
	})

	t.Run("empty input yields no key", func(t *testing.T) {
		assert.Empty(t, makeCacheKey(docInput{}))
	})
}
