package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/ui"
)

// Service links a service of the already-linked project to the current
// directory. Takes a service id as an argument or prompts for one.
func (h *Handler) Service(ctx context.Context, req *entity.CommandRequest) error {
	linked, err := h.cfg.GetLinkedProject()
	if err != nil {
		return err
	}

	var serviceID, serviceName string
	if len(req.Args) > 0 {
		serviceID = req.Args[0]
		serviceName = req.Args[0]
	} else {
		project, err := h.ctrl.GetProject(ctx, linked.Project)
		if err != nil {
			return err
		}
		service, err := ui.PromptServices(project.Services)
		if err != nil {
			return err
		}
		serviceID = service.Id
		serviceName = service.Name
	}

	if err := h.cfg.LinkService(serviceID); err != nil {
		return err
	}
	if err := h.cfg.Write(); err != nil {
		return err
	}

	fmt.Printf("🎉 Linked service %s\n", ui.MagentaText(serviceName))
	return nil
}
