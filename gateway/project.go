package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"
	"github.com/railwayapp/cli/entity"
)

// GetProjects returns the projects the authorized user can link to,
// environments and services included so the link flow needs one request.
func (g *Gateway) GetProjects(ctx context.Context) ([]*entity.Project, error) {
	gqlReq := gql.NewRequest(`
	query {
		me {
			projects {
				id,
				name,
				updatedAt,
				environments {
					id,
					name
				},
				services {
					id,
					name
				}
			}
		}
	}
	`)

	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}

	var resp struct {
		Me struct {
			Projects []*entity.Project `json:"projects"`
		} `json:"me"`
	}
	if err := g.gqlClient.Run(ctx, gqlReq, &resp); err != nil {
		return nil, err
	}
	return resp.Me.Projects, nil
}

func (g *Gateway) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	gqlReq := gql.NewRequest(`
	query ($id: String!) {
		project(id: $id) {
			id,
			name,
			environments {
				id,
				name
			},
			services {
				id,
				name
			}
		}
	}
	`)
	gqlReq.Var("id", projectID)

	if err := g.authorize(gqlReq); err != nil {
		return nil, err
	}

	var resp struct {
		Project *entity.Project `json:"project"`
	}
	if err := g.gqlClient.Run(ctx, gqlReq, &resp); err != nil {
		return nil, err
	}
	return resp.Project, nil
}
