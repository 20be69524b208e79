package configs

import "strings"

// GetRailwayToken returns the project-scoped token from RAILWAY_TOKEN.
// When set, directory-based linking is bypassed and identity is resolved
// by the server.
func (c *Configs) GetRailwayToken() string {
	return c.envs.RailwayToken
}

// GetRailwayAPIToken returns the ephemeral personal token from
// RAILWAY_API_TOKEN, used by CI and automation.
func (c *Configs) GetRailwayAPIToken() string {
	return c.envs.RailwayAPIToken
}

// GetRailwayAuthToken resolves the token used for authorization headers.
// The environment variable wins over the persisted user token; an empty
// stored token counts as absent. Absence is not an error here, callers
// decide whether unauthenticated is acceptable.
func (c *Configs) GetRailwayAuthToken() (string, bool) {
	if token := c.GetRailwayAPIToken(); token != "" {
		return token, true
	}
	if token := c.RootConfig.User.Token; token != nil && strings.TrimSpace(*token) != "" {
		return *token, true
	}
	return "", false
}

func (c *Configs) SetUserToken(token string) {
	if token == "" {
		c.RootConfig.User.Token = nil
		return
	}
	c.RootConfig.User.Token = &token
}

func (c *Configs) EnvIsCI() bool {
	return strings.ToLower(strings.TrimSpace(c.envs.CI)) == "true"
}
