package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/constants"
	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/ui"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Printf("railway version %s\n", constants.Version)

	latest, err := h.cfg.CheckUpdate(ctx, true)
	if err != nil {
		return err
	}
	if latest != "" {
		fmt.Printf("A newer version is available: %s\n", ui.GreenText(latest))
	}
	return nil
}

// CheckVersion runs as a pre-hook on selected commands. It is throttled to
// once per day and silent off-terminal, and never fails the command it
// precedes.
func (h *Handler) CheckVersion(ctx context.Context, req *entity.CommandRequest) error {
	if constants.Version == "source" {
		return nil
	}
	latest, err := h.cfg.CheckUpdate(ctx, false)
	if err != nil || latest == "" {
		return nil
	}
	fmt.Printf("A newer version of the Railway CLI is available: %s\n", ui.GreenText(latest))
	return nil
}
