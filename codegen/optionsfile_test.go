package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOptionsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileOptions(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeOptionsFile(t, `
orchestra-file: OrchestraFIXLatest.xml
output-dir: out
disable-big-decimal: true
message-base-class: true
`)
		opts, err := FileOptions(path)
		require.NoError(t, err)

		c, err := NewConfig(opts...)
		require.NoError(t, err)
		assert.Equal(t, "OrchestraFIXLatest.xml", c.OrchestraFile)
		assert.Equal(t, "out", c.OutputDir)
		assert.False(t, c.BigDecimal)
		assert.True(t, c.MessageBaseClass)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := writeOptionsFile(t, "")
		opts, err := FileOptions(path)
		require.NoError(t, err)

		c, err := NewConfig(opts...)
		require.NoError(t, err)
		assert.Equal(t, "target/generated-sources", c.OutputDir)
		assert.True(t, c.BigDecimal)
		assert.True(t, c.SessionPackage)
	})

	t.Run("fixt11 package disabled before session exclusion", func(t *testing.T) {
		path := writeOptionsFile(t, `
orchestra-file: repo.xml
fixt11-package: false
exclude-session: true
`)
		opts, err := FileOptions(path)
		require.NoError(t, err)

		c, err := NewConfig(opts...)
		require.NoError(t, err)
		assert.False(t, c.SessionPackage)
		assert.True(t, c.ExcludeSession)
	})

	t.Run("exclusion alongside fixt11 package fails validation", func(t *testing.T) {
		path := writeOptionsFile(t, `
orchestra-file: repo.xml
fixt11-package: true
exclude-session: true
`)
		opts, err := FileOptions(path)
		require.NoError(t, err)

		_, err = NewConfig(opts...)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FileOptions(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeOptionsFile(t, "orchestra-file: [unclosed")
		_, err := FileOptions(path)
		require.Error(t, err)
	})
}
