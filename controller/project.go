package controller

import (
	"context"
	"fmt"

	"github.com/pkg/browser"
	"github.com/railwayapp/cli/constants"
	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/ui"
)

// GetProjects returns all projects the user can link to.
func (c *Controller) GetProjects(ctx context.Context) ([]*entity.Project, error) {
	ui.StartSpinner(&ui.SpinnerCfg{Message: "Fetching projects"})
	projects, err := c.gtwy.GetProjects(ctx)
	ui.StopSpinner("")
	return projects, err
}

// GetProject fetches a single project with its environments and services.
func (c *Controller) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	ui.StartSpinner(&ui.SpinnerCfg{Message: "Fetching project"})
	project, err := c.gtwy.GetProject(ctx, projectID)
	ui.StopSpinner("")
	return project, err
}

// OpenProjectInBrowser opens the project dashboard.
func (c *Controller) OpenProjectInBrowser(projectID string) error {
	return browser.OpenURL(fmt.Sprintf(constants.ProjectURLMap["project"], projectID))
}

func (c *Controller) OpenDocsInBrowser() error {
	return browser.OpenURL(constants.RailwayDocsURL)
}
