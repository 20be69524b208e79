package controller

import (
	"context"

	"github.com/railwayapp/cli/entity"
)

// GetLinkedProject resolves which project and environment apply to the
// working directory. With a project-scoped RAILWAY_TOKEN the directory
// map is bypassed and the server says who we are; a service linked
// earlier for this directory is still carried over, since the token
// knows nothing about services.
func (c *Controller) GetLinkedProject(ctx context.Context) (*entity.LinkedProject, error) {
	if c.cfg.GetRailwayToken() == "" {
		return c.cfg.GetLinkedProject()
	}

	identity, err := c.gtwy.GetProjectToken(ctx)
	if err != nil {
		return nil, err
	}

	path, err := c.cfg.GetCurrentDirectory()
	if err != nil {
		return nil, err
	}

	project := &entity.LinkedProject{
		ProjectPath:     path,
		Name:            &identity.Project.Name,
		Project:         identity.Project.Id,
		Environment:     identity.Environment.Id,
		EnvironmentName: &identity.Environment.Name,
	}
	if local, ok := c.cfg.ProjectAt(path); ok {
		project.Service = local.Service
	}
	return project, nil
}
