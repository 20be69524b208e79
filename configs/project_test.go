package configs

import (
	"path/filepath"
	"testing"

	"github.com/railwayapp/cli/errors"
	"github.com/stretchr/testify/require"
)

func withWorkingDirectory(c *Configs, dir string) *Configs {
	c.workingDirectory = func() (string, error) { return dir, nil }
	return c
}

func TestAncestors(t *testing.T) {
	require.Equal(t, []string{"/a/b/c", "/a/b", "/a", "/"}, ancestors("/a/b/c"))
	require.Equal(t, []string{"/"}, ancestors("/"))

	// platform-native root terminates the chain, no infinite loop
	root := filepath.VolumeName("/a") + string(filepath.Separator)
	chain := ancestors(filepath.Join(root, "x"))
	require.Equal(t, root, chain[len(chain)-1])
}

func TestClosestEnclosingLinkWins(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a/b/c/d")
	require.NoError(t, withWorkingDirectory(c, "/a").LinkProject("outer", nil, "env-outer", nil))
	require.NoError(t, withWorkingDirectory(c, "/a/b").LinkProject("inner", nil, "env-inner", nil))

	withWorkingDirectory(c, "/a/b/c/d")
	dir, err := c.GetClosestLinkedProjectDirectory()
	require.NoError(t, err)
	require.Equal(t, "/a/b", dir)

	project, err := c.GetLinkedProject()
	require.NoError(t, err)
	require.Equal(t, "inner", project.Project)
}

func TestNoLinkedProject(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/x/y")
	require.NoError(t, withWorkingDirectory(c, "/a").LinkProject("p", nil, "e", nil))

	withWorkingDirectory(c, "/x/y")
	_, err := c.GetLinkedProject()
	require.ErrorIs(t, err, errors.NoLinkedProject)
}

func TestLinkProjectOverwrites(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a")
	require.NoError(t, c.LinkProject("first", strptr("First"), "env-1", nil))
	require.NoError(t, c.LinkService("svc-1"))
	require.NoError(t, c.LinkProject("second", strptr("Second"), "env-2", nil))

	require.Len(t, c.RootConfig.Projects, 1)
	project := c.RootConfig.Projects["/a"]
	require.Equal(t, "second", project.Project)
	require.Equal(t, "env-2", project.Environment)
	// relinking resets the service
	require.Nil(t, project.Service)
}

func TestLinkServiceFromSubdirectory(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a")
	require.NoError(t, c.LinkProject("p", nil, "e", nil))

	withWorkingDirectory(c, "/a/sub")
	require.NoError(t, c.LinkService("svc-1"))
	require.Equal(t, "svc-1", *c.RootConfig.Projects["/a"].Service)
}

func TestLinkServiceWithoutProject(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a")
	require.ErrorIs(t, c.LinkService("svc-1"), errors.ProjectNotFound)
}

func TestUnlinkServiceIdempotent(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a")
	require.NoError(t, c.LinkProject("p", nil, "e", nil))

	require.NoError(t, c.UnlinkService())
	require.Nil(t, c.RootConfig.Projects["/a"].Service)

	require.NoError(t, c.LinkService("svc-1"))
	require.NoError(t, c.UnlinkService())
	require.NoError(t, c.UnlinkService())
	require.Nil(t, c.RootConfig.Projects["/a"].Service)
}

func TestUnlinkProject(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a/sub")
	require.NoError(t, withWorkingDirectory(c, "/a").LinkProject("p", nil, "e", nil))

	withWorkingDirectory(c, "/a/sub")
	c.UnlinkProject()
	require.Empty(t, c.RootConfig.Projects)

	// unlinking with nothing linked is a silent no-op
	c.UnlinkProject()
	require.Empty(t, c.RootConfig.Projects)
}

func TestGetLinkedProjectMut(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, nil), "/a")
	require.NoError(t, c.LinkProject("p", nil, "e", nil))

	project, err := c.GetLinkedProjectMut()
	require.NoError(t, err)
	project.Service = strptr("svc-1")

	// the handle mutates the stored entry
	require.Equal(t, "svc-1", *c.RootConfig.Projects["/a"].Service)
}

func TestRailwayTokenBypassesDirectoryMap(t *testing.T) {
	c := withWorkingDirectory(newTestConfigs(t, &Envs{RailwayToken: "scoped"}), "/nowhere")

	// closest directory is the working directory by definition
	dir, err := c.GetClosestLinkedProjectDirectory()
	require.NoError(t, err)
	require.Equal(t, "/nowhere", dir)

	// no stored entry exists to mutate when identity comes from the token
	_, err = c.GetLinkedProjectMut()
	require.ErrorIs(t, err, errors.ProjectNotFound)
	require.ErrorIs(t, c.LinkService("svc"), errors.ProjectNotFound)
}
