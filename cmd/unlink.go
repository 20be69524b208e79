package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/ui"
)

// Unlink removes the link covering the current directory. With --service
// only the linked service is cleared and the project stays linked.
func (h *Handler) Unlink(ctx context.Context, req *entity.CommandRequest) error {
	serviceOnly, err := req.Cmd.Flags().GetBool("service")
	if err != nil {
		return err
	}

	if serviceOnly {
		if err := h.cfg.UnlinkService(); err != nil {
			return err
		}
		if err := h.cfg.Write(); err != nil {
			return err
		}
		fmt.Println("🔌 Service unlinked")
		return nil
	}

	project, err := h.ctrl.GetLinkedProject(ctx)
	if err != nil {
		fmt.Println(ui.AlertWarning("No project is currently linked"))
		return nil
	}

	h.cfg.UnlinkProject()
	if err := h.cfg.Write(); err != nil {
		return err
	}

	name := project.Project
	if project.Name != nil {
		name = *project.Name
	}
	fmt.Printf("🔌 Disconnected from %s\n", ui.MagentaText(name))
	return nil
}
