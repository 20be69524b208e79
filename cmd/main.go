package cmd

import (
	"github.com/railwayapp/cli/configs"
	"github.com/railwayapp/cli/controller"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() (*Handler, error) {
	cfg, err := configs.New()
	if err != nil {
		return nil, err
	}
	return &Handler{
		ctrl: controller.New(cfg),
		cfg:  cfg,
	}, nil
}
