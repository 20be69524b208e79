package cmd

import (
	"context"

	"github.com/railwayapp/cli/entity"
)

func (h *Handler) Open(ctx context.Context, req *entity.CommandRequest) error {
	project, err := h.ctrl.GetLinkedProject(ctx)
	if err != nil {
		return err
	}
	return h.ctrl.OpenProjectInBrowser(project.Project)
}
