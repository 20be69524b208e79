package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/ui"
)

// Link connects the current directory to a project. The entry is keyed by
// this exact directory, so running it in a repository root covers the
// whole tree. Relinking overwrites the previous entry.
func (h *Handler) Link(ctx context.Context, req *entity.CommandRequest) error {
	projects, err := h.ctrl.GetProjects(ctx)
	if err != nil {
		return err
	}

	project, err := ui.PromptProjects(projects)
	if err != nil {
		return err
	}

	environment, err := ui.PromptEnvironments(project.Environments)
	if err != nil {
		return err
	}

	err = h.cfg.LinkProject(project.Id, &project.Name, environment.Id, &environment.Name)
	if err != nil {
		return err
	}

	if err := h.cfg.Write(); err != nil {
		return err
	}

	fmt.Printf("🎉 Linked to %s\n", ui.MagentaText(project.Name))
	return nil
}
