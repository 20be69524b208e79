package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/entity"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Println("Opening Railway Docs...")
	return h.ctrl.OpenDocsInBrowser()
}
