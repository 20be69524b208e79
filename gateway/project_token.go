package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"
	"github.com/railwayapp/cli/entity"
)

// GetProjectToken resolves the project and environment a project-scoped
// RAILWAY_TOKEN is bound to. The token itself is the only variable; it
// travels in the project-access-token header.
func (g *Gateway) GetProjectToken(ctx context.Context) (*entity.ProjectTokenIdentity, error) {
	gqlReq := gql.NewRequest(`
	query {
		projectToken {
			project {
				id,
				name
			}
			environment {
				id,
				name
			}
		}
	}
	`)

	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}

	var resp struct {
		ProjectToken *entity.ProjectTokenIdentity `json:"projectToken"`
	}
	if err := g.gqlClient.Run(ctx, gqlReq, &resp); err != nil {
		return nil, err
	}
	return resp.ProjectToken, nil
}
