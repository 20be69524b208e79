package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/ui"
)

func (h *Handler) Status(ctx context.Context, req *entity.CommandRequest) error {
	project, err := h.ctrl.GetLinkedProject(ctx)
	if err != nil {
		return err
	}

	name := project.Project
	if project.Name != nil && *project.Name != "" {
		name = *project.Name
	}
	fmt.Println("Project:", ui.MagentaText(name))

	environment := project.Environment
	if project.EnvironmentName != nil && *project.EnvironmentName != "" {
		environment = *project.EnvironmentName
	}
	fmt.Println("Environment:", ui.BlueText(environment))

	if project.Service != nil {
		fmt.Println("Service:", ui.GreenText(*project.Service))
	} else {
		fmt.Println("Service:", "none")
	}

	return nil
}
