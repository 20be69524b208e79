package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCreatesConfigDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".railway", "nested", "config.json")
	c := newFromPath(path, &Envs{})

	require.NoError(t, c.Write())
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestAbortedWriteLeavesConfigIntact(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a")
	require.NoError(t, c.LinkProject("p", nil, "e", nil))
	require.NoError(t, c.Write())

	before, err := os.ReadFile(c.rootConfigPath)
	require.NoError(t, err)

	// a writer that died before the rename leaves a garbage sibling behind
	tmpPath := strings.TrimSuffix(c.rootConfigPath, ".json") + ".tmp"
	require.NoError(t, os.WriteFile(tmpPath, []byte("{trunc"), 0o644))

	after, err := os.ReadFile(c.rootConfigPath)
	require.NoError(t, err)
	require.Equal(t, before, after)

	reloaded := newFromPath(c.rootConfigPath, &Envs{})
	require.Equal(t, ConfigLoaded, reloaded.LoadOutcome)
	require.Equal(t, "p", reloaded.RootConfig.Projects["/a"].Project)

	// the next successful write replaces both
	require.NoError(t, c.Write())
	_, err = os.Stat(tmpPath)
	require.True(t, os.IsNotExist(err))
}

func TestWriteFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	// a file where the config directory should be makes MkdirAll fail
	blocker := filepath.Join(dir, ".railway")
	require.NoError(t, os.WriteFile(blocker, []byte{}, 0o644))

	c := newFromPath(filepath.Join(blocker, "config.json"), &Envs{})
	require.Error(t, c.Write())
}
