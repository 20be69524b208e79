package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/errors"
	"github.com/railwayapp/cli/ui"
)

// Login stores a personal token in the config file. Tokens are created in
// the account settings; CI should prefer the RAILWAY_API_TOKEN environment
// variable, which never touches disk.
func (h *Handler) Login(ctx context.Context, req *entity.CommandRequest) error {
	if h.cfg.EnvIsCI() {
		return errors.LoginInCI
	}

	token, err := ui.PromptText("Enter your Railway token")
	if err != nil {
		return err
	}

	h.cfg.SetUserToken(token)
	if err := h.cfg.Write(); err != nil {
		return err
	}

	user, err := h.ctrl.GetUser(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("🎉 Logged in as %s (%s)\n", ui.Bold(user.Name), user.Email)
	return nil
}
