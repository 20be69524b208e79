package configs

import (
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/errors"
)

func (c *Configs) GetCurrentDirectory() (string, error) {
	dir, err := c.workingDirectory()
	if err != nil {
		return "", pkgerrors.Wrap(err, "unable to get current working directory")
	}
	return dir, nil
}

// ancestors returns path followed by each of its parents, ending at the
// filesystem root. filepath.Dir is a fixpoint at the root ("/" on POSIX,
// the volume root on Windows), which terminates the chain.
func ancestors(path string) []string {
	chain := []string{path}
	for {
		parent := filepath.Dir(path)
		if parent == path {
			return chain
		}
		chain = append(chain, parent)
		path = parent
	}
}

// GetClosestLinkedProjectDirectory finds the nearest directory, from the
// working directory upward, with a recorded link. Linking a repository
// root therefore covers every subdirectory. With a project-scoped token
// the directory map is not consulted and the working directory is the
// answer by definition.
func (c *Configs) GetClosestLinkedProjectDirectory() (string, error) {
	current, err := c.GetCurrentDirectory()
	if err != nil {
		return "", err
	}
	if c.GetRailwayToken() != "" {
		return current, nil
	}
	for _, path := range ancestors(current) {
		if _, ok := c.RootConfig.Projects[path]; ok {
			return path, nil
		}
	}
	return "", errors.NoLinkedProject
}

// GetLinkedProject resolves the link covering the working directory from
// the local map only. The project-scoped token bypass lives in the
// controller, which owns the GraphQL client.
func (c *Configs) GetLinkedProject() (*entity.LinkedProject, error) {
	path, err := c.GetClosestLinkedProjectDirectory()
	if err != nil {
		return nil, err
	}
	project, ok := c.RootConfig.Projects[path]
	if !ok {
		return nil, errors.NoLinkedProject
	}
	return project, nil
}

// GetLinkedProjectMut returns a mutable handle into the stored entry for
// the closest linked directory. With a project-scoped token this always
// fails: identity came from the token, so there is no stored entry that
// could be mutated.
func (c *Configs) GetLinkedProjectMut() (*entity.LinkedProject, error) {
	if c.GetRailwayToken() != "" {
		return nil, errors.ProjectNotFound
	}
	path, err := c.GetClosestLinkedProjectDirectory()
	if err != nil {
		return nil, errors.ProjectNotFound
	}
	project, ok := c.RootConfig.Projects[path]
	if !ok {
		return nil, errors.ProjectNotFound
	}
	return project, nil
}

// ProjectAt returns the stored entry for an exact directory path, if any.
func (c *Configs) ProjectAt(path string) (*entity.LinkedProject, bool) {
	project, ok := c.RootConfig.Projects[path]
	return project, ok
}

// LinkProject records a link for the current directory, replacing any
// previous link for that exact path. The service starts out unset.
func (c *Configs) LinkProject(projectID string, name *string, environmentID string, environmentName *string) error {
	path, err := c.GetCurrentDirectory()
	if err != nil {
		return err
	}
	c.RootConfig.Projects[path] = &entity.LinkedProject{
		ProjectPath:     path,
		Name:            name,
		Project:         projectID,
		Environment:     environmentID,
		EnvironmentName: environmentName,
	}
	return nil
}

func (c *Configs) LinkService(serviceID string) error {
	project, err := c.GetLinkedProjectMut()
	if err != nil {
		return err
	}
	project.Service = &serviceID
	return nil
}

// UnlinkService clears the service on the closest linked project. Clearing
// an already-absent service is a no-op, not an error.
func (c *Configs) UnlinkService() error {
	project, err := c.GetLinkedProjectMut()
	if err != nil {
		return err
	}
	project.Service = nil
	return nil
}

// UnlinkProject removes the closest enclosing link. Unlinking when nothing
// is linked is deliberately silent.
func (c *Configs) UnlinkProject() {
	path, err := c.GetClosestLinkedProjectDirectory()
	if err != nil {
		return
	}
	delete(c.RootConfig.Projects, path)
}
