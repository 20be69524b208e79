package gateway

import (
	gql "github.com/machinebox/graphql"
	"github.com/railwayapp/cli/configs"
	"github.com/railwayapp/cli/errors"
)

const cliSourceHeader = "cli"

// Gateway is the authorized GraphQL client. It takes a Configs reference
// so every request picks up the resolved backboard host and the token
// precedence rules.
type Gateway struct {
	cfg       *configs.Configs
	gqlClient *gql.Client
}

func New(cfg *configs.Configs) *Gateway {
	return &Gateway{
		cfg:       cfg,
		gqlClient: gql.NewClient(cfg.GetBackboard()),
	}
}

func (g *Gateway) authorize(req *gql.Request) error {
	req.Header.Add("x-source", cliSourceHeader)

	if token := g.cfg.GetRailwayToken(); token != "" {
		req.Header.Add("project-access-token", token)
		return nil
	}
	if token, ok := g.cfg.GetRailwayAuthToken(); ok {
		req.Header.Add("authorization", "Bearer "+token)
		return nil
	}
	return errors.NotLoggedIn
}
