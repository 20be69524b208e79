package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/railwayapp/cli/entity"
	"github.com/stretchr/testify/require"
)

func newTestConfigs(t *testing.T, envs *Envs) *Configs {
	t.Helper()
	if envs == nil {
		envs = &Envs{}
	}
	c := newFromPath(filepath.Join(t.TempDir(), ".railway", "config.json"), envs)
	c.stdoutIsTerminal = func() bool { return true }
	return c
}

func strptr(s string) *string {
	return &s
}

func TestNewAbsentFile(t *testing.T) {
	c := newTestConfigs(t, nil)

	require.Equal(t, ConfigAbsent, c.LoadOutcome)
	require.NoError(t, c.RegenerateReason)
	require.Empty(t, c.RootConfig.Projects)
	require.Nil(t, c.RootConfig.User.Token)
	require.Nil(t, c.RootConfig.LastUpdateCheck)
}

func TestNewValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{
	  "projects": {
	    "/home/u/app": {
	      "projectPath": "/home/u/app",
	      "name": "app",
	      "project": "prj-1",
	      "environment": "env-1",
	      "environmentName": "production",
	      "service": "svc-1"
	    }
	  },
	  "user": { "token": "tok" }
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c := newFromPath(path, &Envs{})

	require.Equal(t, ConfigLoaded, c.LoadOutcome)
	require.Len(t, c.RootConfig.Projects, 1)
	project := c.RootConfig.Projects["/home/u/app"]
	require.NotNil(t, project)
	require.Equal(t, "prj-1", project.Project)
	require.Equal(t, "env-1", project.Environment)
	require.Equal(t, "svc-1", *project.Service)
	require.Equal(t, "tok", *c.RootConfig.User.Token)
}

func TestNewCorruptFileRegenerates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := newFromPath(path, &Envs{})

	require.Equal(t, ConfigRegenerated, c.LoadOutcome)
	require.Error(t, c.RegenerateReason)
	require.Empty(t, c.RootConfig.Projects)

	// the corrupt file stays on disk until the next Write
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{not json", string(raw))
}

func TestRootConfigPathPerEnvironment(t *testing.T) {
	tests := []struct {
		environment Environment
		file        string
	}{
		{Production, "config.json"},
		{Staging, "config-staging.json"},
		{Dev, "config-dev.json"},
	}
	for _, tt := range tests {
		require.Equal(t, filepath.Join("/home/u", ".railway", tt.file), rootConfigPath("/home/u", tt.environment))
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	c := newTestConfigs(t, nil)
	checked := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	c.RootConfig.Projects["/home/u/app"] = &entity.LinkedProject{
		ProjectPath:     "/home/u/app",
		Name:            strptr("app"),
		Project:         "prj-1",
		Environment:     "env-1",
		EnvironmentName: strptr("production"),
		Service:         strptr("svc-1"),
	}
	c.RootConfig.Projects["/home/u/other"] = &entity.LinkedProject{
		ProjectPath: "/home/u/other",
		Project:     "prj-2",
		Environment: "env-2",
	}
	c.SetUserToken("tok")
	c.RootConfig.LastUpdateCheck = &checked
	c.RootConfig.NewVersionAvailable = strptr("3.0.0")

	require.NoError(t, c.Write())

	reloaded := newFromPath(c.rootConfigPath, &Envs{})
	require.Equal(t, ConfigLoaded, reloaded.LoadOutcome)
	require.Equal(t, c.RootConfig.Projects, reloaded.RootConfig.Projects)
	require.Equal(t, c.RootConfig.User, reloaded.RootConfig.User)
	require.Equal(t, c.RootConfig.NewVersionAvailable, reloaded.RootConfig.NewVersionAvailable)
	require.True(t, reloaded.RootConfig.LastUpdateCheck.Equal(checked))
}

func TestReset(t *testing.T) {
	c := newTestConfigs(t, nil)
	c.SetUserToken("tok")
	c.RootConfig.Projects["/a"] = &entity.LinkedProject{ProjectPath: "/a", Project: "p", Environment: "e"}

	c.Reset()

	require.Empty(t, c.RootConfig.Projects)
	require.Nil(t, c.RootConfig.User.Token)
}
