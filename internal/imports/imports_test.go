package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDialect(t *testing.T) {
	t.Run("Kotlin source", func(t *testing.T) {
		d, err := DetectDialect("src/main/kotlin/App.kt")
		require.NoError(t, err)
		assert.Equal(t, DialectKotlin, d)
	})

	t.Run("Kotlin script", func(t *testing.T) {
		d, err := DetectDialect("build.gradle.kts")
		require.NoError(t, err)
		assert.Equal(t, DialectScript, d)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		_, err := DetectDialect("Main.java")
		var dialectErr *UnsupportedDialectError
		require.ErrorAs(t, err, &dialectErr)
		assert.Equal(t, ".java", dialectErr.Ext)
	})
}

func TestResolve(t *testing.T) {
	t.Run("Standard source layout", func(t *testing.T) {
		imp, err := Resolve("src/main/kotlin/com/example/view/MainView.kt")
		require.NoError(t, err)
		assert.Equal(t, "com.example.view.MainView", imp)
	})

	t.Run("Src fallback without kotlin segment", func(t *testing.T) {
		imp, err := Resolve("src/app/MainView.kt")
		require.NoError(t, err)
		assert.Equal(t, "app.MainView", imp)
	})

	t.Run("No marker segment uses the whole path", func(t *testing.T) {
		imp, err := Resolve("scripts/Deploy.kts")
		require.NoError(t, err)
		assert.Equal(t, "scripts.Deploy", imp)
	})

	t.Run("Bare file name", func(t *testing.T) {
		imp, err := Resolve("MainView.kt")
		require.NoError(t, err)
		assert.Equal(t, "MainView", imp)
	})

	t.Run("Unsupported dialect fails", func(t *testing.T) {
		_, err := Resolve("src/main/java/App.java")
		var dialectErr *UnsupportedDialectError
		require.ErrorAs(t, err, &dialectErr)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := Resolve("src/main/kotlin/a/B.kt")
		require.NoError(t, err)
		second, err := Resolve("src/main/kotlin/a/B.kt")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
