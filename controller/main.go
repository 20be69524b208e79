package controller

import (
	"github.com/railwayapp/cli/configs"
	"github.com/railwayapp/cli/gateway"
)

type Controller struct {
	gtwy *gateway.Gateway
	cfg  *configs.Configs
}

func New(cfg *configs.Configs) *Controller {
	return &Controller{
		gtwy: gateway.New(cfg),
		cfg:  cfg,
	}
}
