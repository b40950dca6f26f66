package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("adjacent config wins over an explicit flag", func(t *testing.T) {
		dir := t.TempDir()
		workflow := filepath.Join(dir, "workflow.json")
		adjacent := filepath.Join(dir, AdjacentConfigName)
		explicit := filepath.Join(dir, "other.json")
		touch(t, workflow)
		touch(t, adjacent)
		touch(t, explicit)

		got, err := ResolveConfigPath(workflow, explicit)
		require.NoError(t, err)
		assert.Equal(t, adjacent, got)
	})

	t.Run("explicit path as given", func(t *testing.T) {
		dir := t.TempDir()
		workflow := filepath.Join(dir, "workflow.json")
		explicit := filepath.Join(t.TempDir(), "custom.json")
		touch(t, workflow)
		touch(t, explicit)

		got, err := ResolveConfigPath(workflow, explicit)
		require.NoError(t, err)
		assert.Equal(t, explicit, got)
	})

	t.Run("explicit path relative to the workflow directory", func(t *testing.T) {
		dir := t.TempDir()
		workflow := filepath.Join(dir, "workflow.json")
		touch(t, workflow)
		touch(t, filepath.Join(dir, "custom.json"))

		got, err := ResolveConfigPath(workflow, "custom.json")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "custom.json"), got)
	})

	t.Run("nothing found is an error", func(t *testing.T) {
		dir := t.TempDir()
		workflow := filepath.Join(dir, "workflow.json")
		touch(t, workflow)

		_, err := ResolveConfigPath(workflow, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), AdjacentConfigName)
	})

	t.Run("a directory does not count as a config", func(t *testing.T) {
		dir := t.TempDir()
		workflow := filepath.Join(dir, "workflow.json")
		touch(t, workflow)
		require.NoError(t, os.Mkdir(filepath.Join(dir, AdjacentConfigName), 0o755))

		_, err := ResolveConfigPath(workflow, "")
		require.Error(t, err)
	})
}
