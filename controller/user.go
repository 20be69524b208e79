package controller

import (
	"context"
	"fmt"

	"github.com/railwayapp/cli/entity"
	"github.com/railwayapp/cli/errors"
	"github.com/railwayapp/cli/ui"
)

func (c *Controller) GetUser(ctx context.Context) (*entity.User, error) {
	if _, ok := c.cfg.GetRailwayAuthToken(); !ok {
		return nil, errors.NotLoggedIn
	}
	return c.gtwy.GetUser(ctx)
}

// Logout wipes the persisted document, links included, and makes the wipe
// durable immediately.
func (c *Controller) Logout(ctx context.Context) error {
	if token := c.cfg.RootConfig.User.Token; token == nil || *token == "" {
		fmt.Printf("🚪 %s\n", ui.YellowText("Already logged out"))
		return nil
	}
	c.cfg.Reset()
	if err := c.cfg.Write(); err != nil {
		return err
	}
	fmt.Printf("👋 %s\n", ui.YellowText("Logged out"))
	return nil
}
