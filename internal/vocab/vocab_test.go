package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v := Default()

	t.Run("Widget vocabulary", func(t *testing.T) {
		assert.True(t, v.IsWidget("button"))
		assert.True(t, v.IsWidget("vbox"))
		assert.False(t, v.IsWidget("println"))
	})

	t.Run("Containers are widgets too", func(t *testing.T) {
		assert.True(t, v.IsContainer("vbox"))
		assert.False(t, v.IsContainer("button"))
		assert.True(t, v.IsWidget("vbox"))
	})

	t.Run("Reactive wrappers", func(t *testing.T) {
		assert.True(t, v.IsReactiveWrapper("observableArrayList"))
		assert.True(t, v.IsReactiveWrapper("SimpleStringProperty"))
		assert.False(t, v.IsReactiveWrapper("listOf"))
	})

	t.Run("Collections", func(t *testing.T) {
		assert.True(t, v.IsCollectionCtor("listOf"))
		assert.True(t, v.IsCollectionCtor("mutableMapOf"))
		assert.False(t, v.IsCollectionCtor("observable"))
	})

	t.Run("Injection markers", func(t *testing.T) {
		assert.True(t, v.IsInjectionMarker("inject"))
		assert.True(t, v.IsInjectionMarker("singleAssign"))
		assert.False(t, v.IsInjectionMarker("lazy"))
	})
}

func TestLoad(t *testing.T) {
	t.Run("Full override", func(t *testing.T) {
		path := writeVocab(t, `
widgets:
  - sbutton
containers:
  - spanel
reactive_wrappers:
  - signal
collections:
  - seq
injection_markers:
  - wire
`)
		v, err := Load(path)
		require.NoError(t, err)

		assert.True(t, v.IsWidget("sbutton"))
		assert.True(t, v.IsContainer("spanel"))
		assert.True(t, v.IsReactiveWrapper("signal"))
		assert.True(t, v.IsCollectionCtor("seq"))
		assert.True(t, v.IsInjectionMarker("wire"))
		// The TornadoFX defaults are fully replaced.
		assert.False(t, v.IsWidget("button"))
	})

	t.Run("Partial override keeps defaults elsewhere", func(t *testing.T) {
		path := writeVocab(t, `
reactive_wrappers:
  - signal
`)
		v, err := Load(path)
		require.NoError(t, err)

		assert.True(t, v.IsReactiveWrapper("signal"))
		assert.False(t, v.IsReactiveWrapper("observable"))
		// Untouched sections fall back to the built-ins.
		assert.True(t, v.IsWidget("button"))
		assert.True(t, v.IsCollectionCtor("listOf"))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := writeVocab(t, "widgets: [unclosed")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func writeVocab(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
